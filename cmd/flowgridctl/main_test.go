package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const happyPathConfig = `[
	{"id": "s", "module": "StartModule", "inputs": {}, "outputs": {"seed": "x"}},
	{"id": "a", "module": "AddModule", "inputs": {"a": "x", "b": "x"}, "outputs": {"c": "y"}},
	{"id": "o", "module": "OutputModule", "inputs": {"result": "y"}, "outputs": {}}
]`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunPlan_Blocking(t *testing.T) {
	configPath := writeConfig(t, happyPathConfig)

	var stdout bytes.Buffer
	require.NoError(t, runPlan(context.Background(), &stdout, configPath, "blocking", ""))
	assert.Equal(t, "6\n", stdout.String())
}

func TestRunPlan_Signal(t *testing.T) {
	configPath := writeConfig(t, happyPathConfig)

	var stdout bytes.Buffer
	require.NoError(t, runPlan(context.Background(), &stdout, configPath, "signal", ""))
	assert.Equal(t, "6\n", stdout.String())
}

func TestRunPlan_WritesDotFile(t *testing.T) {
	configPath := writeConfig(t, happyPathConfig)
	dotPath := filepath.Join(t.TempDir(), "plan.dot")

	var stdout bytes.Buffer
	require.NoError(t, runPlan(context.Background(), &stdout, configPath, "blocking", dotPath))

	contents, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"s"`)
	assert.Contains(t, string(contents), `"s" -> "a"`)
}

func TestRunPlan_UnknownScheduler(t *testing.T) {
	configPath := writeConfig(t, happyPathConfig)

	var stdout bytes.Buffer
	err := runPlan(context.Background(), &stdout, configPath, "parallel", "")
	assert.ErrorContains(t, err, "unknown scheduler")
}

func TestRunPlan_MissingConfigFile(t *testing.T) {
	var stdout bytes.Buffer
	err := runPlan(context.Background(), &stdout, filepath.Join(t.TempDir(), "missing.json"), "blocking", "")
	assert.Error(t, err)
}

func TestRunPlan_InvalidConfig(t *testing.T) {
	configPath := writeConfig(t, `{"not": "a list of entries"}`)

	var stdout bytes.Buffer
	err := runPlan(context.Background(), &stdout, configPath, "blocking", "")
	assert.Error(t, err)
}

func TestNewRootCmd_RequiresConfigFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	assert.Error(t, cmd.Execute())
}
