package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-camutils/engine/manipulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	out, err := execute(t, "--config", path, "version")
	require.NoError(t, err)
	assert.Equal(t, "orbitviewer v"+version+"\n", out)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "version wrote a config file")
}

func TestBookmarkHome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	out, err := execute(t, "--config", path, "bookmark", "home")
	require.NoError(t, err)

	var bm manipulator.Bookmark
	require.NoError(t, yaml.Unmarshal([]byte(out), &bm))
	assert.Equal(t, manipulator.Bookmark{Distance: 5}, bm)
}

func TestConfigShowWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	out, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: orbit")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestConfigValidateRejectsBadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("manipulator:\n  mode: fly\n"), 0644))

	_, err := execute(t, "--config", path, "config", "validate")
	assert.ErrorIs(t, err, manipulator.ErrUnknownMode)
}
