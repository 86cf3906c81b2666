package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/fluxlist/internal/config"
)

// isolate keeps the user's config file and FLUXLIST_* variables out of
// the test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, config.EnvPrefix) {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "fluxlist dev")
	assert.Contains(t, out, "Commit: unknown")
}

func TestReplay_Stdin(t *testing.T) {
	isolate(t)
	input := `{"actionType":"ADD_NEW_ITEM","text":{"name":"Marco"}}` + "\n" +
		`{"actionType":"ADD_NEW_ITEM","text":{"id":"x","name":"Polo"}}` + "\n"

	out, _, err := execute(t, input, "replay")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":"Marco"},{"id":"x","name":"Polo"}]`, out)
}

func TestReplay_FileWithConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	actions := filepath.Join(dir, "actions.jsonl")
	require.NoError(t, os.WriteFile(actions, []byte(`{"actionType":"ADD_NEW_ITEM","text":{"name":"A"}}`+"\n"), 0o644))

	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[dispatcher]\nmetrics = true\n"), 0o644))

	out, stderr, err := execute(t, "", "replay", "--config", cfgPath, actions)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":"A"}]`, out)
	assert.Contains(t, stderr, "ADD_NEW_ITEM: 1 dispatches")
}

func TestReplay_FlagOverridesLogLevel(t *testing.T) {
	isolate(t)
	input := `{"actionType":"ADD_NEW_ITEM","text":{"name":"A"}}` + "\n"

	_, stderr, err := execute(t, input, "replay", "--log-level", "debug", "--trace")

	require.NoError(t, err)
	assert.Contains(t, stderr, "ADD_NEW_ITEM")
	assert.Contains(t, stderr, "[DEBUG]")
}

func TestReplay_InvalidFlag(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "", "replay", "--id-strategy", "snowflake")

	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestReplay_BadInput(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "garbage\n", "replay")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReplay_MissingFile(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "", "replay", filepath.Join(t.TempDir(), "nope.jsonl"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReplay_HelpShowsLineLimit(t *testing.T) {
	out, _, err := execute(t, "", "replay", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Lines may be at most 1048576 bytes.")
}
