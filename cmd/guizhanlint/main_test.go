package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("GUIZHANLINT_DIR", "")
	t.Setenv("GUIZHANLINT_BASE", "")
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLookupLabel(t *testing.T) {
	t.Run("LookupLabel_Success", func(t *testing.T) {
		label, suggestions, err := lookupLabel("cat", "BRITISH_SHORTHAIR")
		require.NoError(t, err)
		assert.Equal(t, "英国短毛猫", label)
		assert.Empty(t, suggestions)

		label, _, err = lookupLabel("cat", "tuxedo")
		require.NoError(t, err)
		assert.Equal(t, "西服猫", label)

		label, _, err = lookupLabel("panda", "lazy")
		require.NoError(t, err)
		assert.Equal(t, "懒惰", label)

		label, _, err = lookupLabel("metal", "HARDENED_METAL")
		require.NoError(t, err)
		assert.Equal(t, "硬化金属", label)
	})
	t.Run("LookupLabel_Suggest", func(t *testing.T) {
		label, suggestions, err := lookupLabel("cat", "ragdol")
		require.NoError(t, err)
		assert.Equal(t, "Ragdol", label)
		assert.Contains(t, suggestions, "Ragdoll")
	})
	t.Run("LookupLabel_Fail", func(t *testing.T) {
		_, _, err := lookupLabel("horse", "white")
		assert.Error(t, err)
	})
}

func TestHumanizeCmd(t *testing.T) {
	out, _, err := runCmd(t, "humanize", "MAGMA_CUBE", "the_killer_bunny")
	require.NoError(t, err)
	assert.Equal(t, "Magma Cube\nThe Killer Bunny\n", out)

	out, _, err = runCmd(t, "dehumanize", "Magma Cube")
	require.NoError(t, err)
	assert.Equal(t, "MAGMA_CUBE\n", out)
}

func TestLabelCmd(t *testing.T) {
	out, _, err := runCmd(t, "label", "metal", "damascus steel")
	require.NoError(t, err)
	assert.Equal(t, "大马士革钢\n", out)

	out, errOut, err := runCmd(t, "label", "panda", "worr")
	require.NoError(t, err)
	assert.Equal(t, "Worr\n", out)
	assert.Contains(t, errOut, "Worried")
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zh-CN.yml"), []byte("a: 一\nb: 二\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en-US.yml"), []byte("a: one\n"), 0o644))

	out, _, err := runCmd(t, "check", dir, "--base", "zh-CN")
	require.NoError(t, err)
	assert.Contains(t, out, "Languages: [en-US zh-CN]")
	assert.Contains(t, out, "- b")

	_, _, err = runCmd(t, "check", dir, "--base", "zh-CN", "--fail")
	assert.ErrorIs(t, err, errIssuesFound)

	_, _, err = runCmd(t, "check", filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
