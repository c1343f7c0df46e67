package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowgrid/internal/argspec"
	"github.com/vk/flowgrid/internal/module"
	"github.com/vk/flowgrid/internal/registry"
)

type stubFactory struct{}

func (stubFactory) Signature() argspec.Signature { return nil }
func (stubFactory) Create(id string) *module.Module {
	return module.New(id, nil, nil)
}

func TestRegistry_RegisterAndFind(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register("Stub", stubFactory{}))

	f, err := r.Find("Stub")
	require.NoError(t, err)
	assert.Equal(t, stubFactory{}, f)
}

func TestRegistry_DuplicateRegistrationFails(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register("Stub", stubFactory{}))

	err := r.Register("Stub", stubFactory{})
	require.Error(t, err)

	var dup *registry.AlreadyRegisteredError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Stub", dup.TypeName)
}

func TestRegistry_FindUnknownFails(t *testing.T) {
	r := registry.New()
	_, err := r.Find("Nope")
	require.Error(t, err)

	var unk *registry.UnknownModuleError
	require.ErrorAs(t, err, &unk)
}

func TestRegistry_AllReturnsSnapshot(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register("Stub", stubFactory{}))

	snap := r.All()
	require.Len(t, snap, 1)

	snap["Injected"] = stubFactory{}
	_, err := r.Find("Injected")
	require.Error(t, err, "mutating the snapshot must not affect the registry")
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := registry.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Find("whatever")
			_ = r.All()
		}(i)
	}
	require.NoError(t, r.Register("Stub", stubFactory{}))
	wg.Wait()
}
