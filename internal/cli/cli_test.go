package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/solver"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolve_TextGrid(t *testing.T) {
	path := writeFile(t, "maze.txt", "S..\n.#.\n..G\n")
	out, err := execute(t, "solve", "--grid", path)
	require.NoError(t, err)
	assert.Equal(t, "S..\n*#.\n**G\nStart=(0,0)  Goal=(2,2)  Walls=1  |  Solved! path_len=5\n", out)
}

func TestSolve_JSON(t *testing.T) {
	path := writeFile(t, "maze.txt", "S..\n.#.\n..G\n")
	out, err := execute(t, "solve", "--grid", path, "--format", "json")
	require.NoError(t, err)

	var got render.PathJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 5, got.Length)
	assert.Equal(t, 3, got.N)
}

func TestSolve_MaxLenTooSmall(t *testing.T) {
	path := writeFile(t, "maze.txt", "S..\n.#.\n..G\n")
	out, err := execute(t, "solve", "--grid", path, "--max-len", "4")
	assert.ErrorIs(t, err, solver.ErrBufferTooSmall)
	assert.Contains(t, out, "No path (buffer_too_small)")
}

func TestSolve_Scenario(t *testing.T) {
	path := writeFile(t, "s.hcl", `
grid {
  size  = 2
  walls = [[0, 1], [1, 0]]
}
start {
  row = 0
  col = 0
}
goal {
  row = 1
  col = 1
}
`)
	out, err := execute(t, "solve", "--scenario", path, "--format", "json")
	assert.ErrorIs(t, err, solver.ErrUnreachable)
	assert.Contains(t, out, `"failure": "unreachable"`)
}

func TestSolve_OverrideEndpoints(t *testing.T) {
	out, err := execute(t, "solve", "--start", "0,0", "--goal", "0,3")
	require.NoError(t, err)
	assert.Contains(t, out, "path_len=4")
	assert.True(t, strings.HasPrefix(out, "S**G"))
}

func TestSolve_Steps(t *testing.T) {
	path := writeFile(t, "maze.txt", "SG\n..\n")
	out, err := execute(t, "solve", "--grid", path, "--steps")
	require.NoError(t, err)
	assert.Contains(t, out, "[Step 1] cell 0\nSG\no.\n")
	assert.Contains(t, out, "[Step 3] cell 1\n")
	assert.Contains(t, out, "Open=1 Closed=3")
}

func TestSolve_StepsSkippedOnInvalidStart(t *testing.T) {
	path := writeFile(t, "maze.txt", "S#\n.G\n")
	out, err := execute(t, "solve", "--grid", path, "--start", "0,1", "--steps")
	assert.ErrorIs(t, err, solver.ErrBlockedEndpoint)
	assert.Contains(t, out, "Steps skipped (blocked_endpoint)\n")
	assert.NotContains(t, out, "[Step ")
	assert.Contains(t, out, "No path (blocked_endpoint)")
}

func TestSolve_BadFlags(t *testing.T) {
	_, err := execute(t, "solve", "--format", "xml")
	assert.Error(t, err)
	_, err = execute(t, "solve", "--start", "1")
	assert.Error(t, err)
	_, err = execute(t, "solve", "--goal", "a,1")
	assert.Error(t, err)
	_, err = execute(t, "solve", "--grid", "a.txt", "--scenario", "b.hcl")
	assert.Error(t, err)
	_, err = execute(t, "solve", "--grid", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestComponents(t *testing.T) {
	path := writeFile(t, "maze.txt", "S#.\n.#.\n.#G\n")
	out, err := execute(t, "components", "--grid", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Grid 3x3, 3 walls, 2 regions\n")
	assert.Contains(t, out, "region 1: 3 cells, first (0,2)")
	assert.Contains(t, out, "connected: false")
}

func TestParseCell(t *testing.T) {
	c, err := parseCell(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, solver.Cell{Row: 3, Col: 4}, c)
}
