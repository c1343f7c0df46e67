package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/metrics"
	"github.com/vk/flowgrid/internal/queryplan"
	"github.com/vk/flowgrid/internal/valuectx"
)

// Blocking executes a Plan's modules sequentially, respecting topological
// order, on the calling goroutine. Grounded in the teacher's
// internal/dag.Executor.Run dispatch loop, stripped of its worker pool and
// sync/atomic node-state machine — parallel execution is a Non-goal here,
// so what remains is the plain for-loop the teacher's worker reduces to
// when numWorkers is 1.
type Blocking struct {
	plan *queryplan.Plan
}

// NewBlocking constructs a Blocking scheduler for plan.
func NewBlocking(plan *queryplan.Plan) *Blocking {
	return &Blocking{plan: plan}
}

// Run constructs a fresh ValueContext and invokes every module in
// topological order. extra is threaded unchanged into every module's
// Invoke call as the plan's fixed tuple of extra run-time arguments. Each
// OUT default is re-applied at the start of this run by Module.Invoke
// itself, so a stale value from a prior run on a different context can
// never leak in (spec §4.4).
func (s *Blocking) Run(ctx context.Context, extra ...any) error {
	logger := ctxlog.FromContext(ctx)
	vc := valuectx.New(s.plan.NumChannels())
	start := time.Now()

	for _, mod := range s.plan.Modules() {
		logger.Debug("scheduler: invoking module", "id", mod.ID())
		if err := mod.Invoke(ctx, vc, extra...); err != nil {
			metrics.SchedulerRunsTotal.WithLabelValues("blocking", "error").Inc()
			metrics.SchedulerRunDuration.WithLabelValues("blocking").Observe(time.Since(start).Seconds())
			return fmt.Errorf("scheduler: module %s: %w", mod.ID(), err)
		}
	}
	metrics.SchedulerRunsTotal.WithLabelValues("blocking", "success").Inc()
	metrics.SchedulerRunDuration.WithLabelValues("blocking").Observe(time.Since(start).Seconds())
	return nil
}
