package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginDoc = "# Login\n\n{given}`a user exists` and {then}`the user can log in`.\n"

func runBuild(t *testing.T, force bool) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunBuild(context.Background(), &buf, force))
	return buf.String()
}

func TestBuild_GeneratesFeature(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDoc(t, "login", loginDoc)

	out := runBuild(t, false)

	data, err := os.ReadFile("features/login.feature")
	require.NoError(t, err)
	assert.Equal(t, `Feature: login
    This document should work

    Scenario: Login
        Given a user exists
        Then the user can log in
`, string(data))
	assert.Contains(t, out, "gen  docs/login.md")
	assert.Contains(t, out, "generated 1, skipped 0, failed 0")
}

func TestBuild_SecondRunSkips(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDoc(t, "login", loginDoc)
	runBuild(t, false)

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes("docs/login.md", old, old))

	out := runBuild(t, false)
	assert.Contains(t, out, "skp  docs/login.md")
	assert.Contains(t, out, "generated 0, skipped 1, failed 0")
}

func TestBuild_Force(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDoc(t, "login", loginDoc)
	runBuild(t, false)

	out := runBuild(t, true)
	assert.Contains(t, out, "gen  docs/login.md")
}

func TestBuild_ReportsFailures(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDoc(t, "bad", "{given}`outside`\n")
	writeDoc(t, "login", loginDoc)

	var buf bytes.Buffer
	err := RunBuild(context.Background(), &buf, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 documents failed")

	out := buf.String()
	assert.Contains(t, out, "err  docs/bad.md: bad: step \"outside\" is outside of a section")
	assert.Contains(t, out, "gen  docs/login.md")
	_, statErr := os.Stat("features/bad.feature")
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuild_StrictConfig(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("featgen.yaml", []byte("strict: true\n"), 0o644))
	writeDoc(t, "login", loginDoc)

	out := runBuild(t, false)
	assert.Contains(t, out, "gen  docs/login.md")
}

func TestBuild_CustomRoles(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("featgen.yaml", []byte("roles:\n  pre: given\n"), 0o644))
	writeDoc(t, "login", "# Login\n\n{pre}`a user`\n")

	runBuild(t, false)

	data, err := os.ReadFile("features/login.feature")
	require.NoError(t, err)
	assert.Contains(t, string(data), "        Given a user\n")
}

func TestBuild_BadRoleKeyword(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("featgen.yaml", []byte("roles:\n  pre: whenever\n"), 0o644))

	var buf bytes.Buffer
	err := RunBuild(context.Background(), &buf, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown keyword "whenever"`)
}

func TestBuild_WithoutInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunBuild(context.Background(), &buf, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `featgen init` first")
}
