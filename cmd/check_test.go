package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_ValidFeatures(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDoc(t, "login", loginDoc)
	writeDoc(t, "config", "# Config\n\n{given}`the file`:\n\n```yaml\na: 1\n```\n")
	runBuild(t, false)

	var buf bytes.Buffer
	require.NoError(t, RunCheck(&buf))
	out := buf.String()
	assert.Contains(t, out, "features/login.feature")
	assert.Contains(t, out, "checked 2 features")
}

func TestCheck_InvalidFeature(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("features/broken.feature", []byte("Scenario: no feature\n  Given x\nFeature: late\n"), 0o644))

	var buf bytes.Buffer
	err := RunCheck(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 invalid features")
	assert.Contains(t, buf.String(), "err  features/broken.feature")
}

func TestCheck_WithoutInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunCheck(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `featgen init` first")
}
