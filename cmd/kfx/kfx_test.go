package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/keyframes"
	"github.com/npillmayer/keyframes/compiler"
	"github.com/npillmayer/keyframes/dom/elempath"
	"github.com/npillmayer/keyframes/maybe"
	"github.com/npillmayer/keyframes/timeline"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head>
<style>
@keyframes bounce {
  from { top: 0; left: 10px }
  50%  { top: 100px }
  to   { top: 0; left: 90px; color: blue }
}
</style>
</head><body><div class="stage"><span id="ball">o</span></div></body></html>`

func writePage(t *testing.T) (dir, file string) {
	dir = t.TempDir()
	file = filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(file, []byte(page), 0644))
	return dir, file
}

func run(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--env", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestPathCmd(t *testing.T) {
	_, file := writePage(t)
	out, err := run(t, newPathCmd(), "path", file, ".stage span")
	require.NoError(t, err)
	assert.Equal(t, "/html[1]/body[1]/div[1]/span[1]\n", out)

	out, err = run(t, newPathCmd(), "path", file, "span", "--root", ".stage")
	require.NoError(t, err)
	assert.Equal(t, "span[1]\n", out)

	_, err = run(t, newPathCmd(), "path", file, "span", "--root", "video")
	assert.Error(t, err)
}

func TestResolveCmd(t *testing.T) {
	_, file := writePage(t)
	out, err := run(t, newResolveCmd(), "resolve", file, "/html[1]/body[1]/div[1]/span[1]")
	require.NoError(t, err)
	assert.Equal(t, "<span> #ball \"o\"\n", out)

	_, err = run(t, newResolveCmd(), "resolve", file, "/html[1]/body[1]/div[2]")
	assert.Error(t, err)

	_, err = run(t, newResolveCmd(), "resolve", file, "/html[1]/body[")
	assert.True(t, errors.Is(err, elempath.ErrInvalidPath), "expected path syntax error, have %v", err)
}

func TestImportAndCompile(t *testing.T) {
	dir, file := writePage(t)
	tlfile := filepath.Join(dir, "bounce.yaml")
	_, err := run(t, newImportCmd(), "import", file, "bounce", "--target", "#ball", "-f", "120", "-o", tlfile)
	require.NoError(t, err)
	data, err := os.ReadFile(tlfile)
	require.NoError(t, err)
	tl, err := timeline.Decode(data, timeline.YAML)
	require.NoError(t, err)
	require.Equal(t, []int{0, 60, 120}, tl.FrameNumbers())
	require.Equal(t, "/html[1]/body[1]/div[1]/span[1]", tl.Path())

	out, err := run(t, newCompileCmd(), "compile", tlfile, "--doc", file, "--tree")
	require.NoError(t, err)
	for _, s := range []string{"container #1", "120 frames", "2.00s", "top", "left", "<span>"} {
		assert.Contains(t, out, s)
	}
	// initial sets for top and left, then top@60, top@120, left@120
	assert.Equal(t, 5, strings.Count(out, "dur="), "expected 5 tweens in tree dump:\n%s", out)

	out, err = run(t, newCompileCmd(), "compile", tlfile, "--doc", file, "--fps", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "4.00s")
}

func TestCompileCmdFailures(t *testing.T) {
	dir, file := writePage(t)
	_, err := run(t, newCompileCmd(), "compile", filepath.Join(dir, "missing.yaml"), "--doc", file)
	assert.Error(t, err)

	tlfile := filepath.Join(dir, "moved.json")
	moved := `{"targetKind": "dom", "path": "/html[1]/body[1]/div[3]", "frames": [{"frame": 0, "params": {"x": 1}}]}`
	require.NoError(t, os.WriteFile(tlfile, []byte(moved), 0644))
	_, err = run(t, newCompileCmd(), "compile", tlfile, "--doc", file)
	assert.True(t, errors.Is(err, compiler.ErrInvalidInput), "expected invalid input, have %v", err)

	_, err = run(t, newCompileCmd(), "compile", tlfile)
	assert.Error(t, err, "--doc is required")

	_, err = run(t, newCompileCmd(), "compile", tlfile, "--doc", file, "--ease", "ease-in")
	assert.Error(t, err, "transitions are always linear, there is no ease option")
}

func TestImportCmdFailures(t *testing.T) {
	_, file := writePage(t)
	_, err := run(t, newImportCmd(), "import", file, "spin", "--target", "#ball")
	assert.Error(t, err)
	_, err = run(t, newImportCmd(), "import", file, "bounce", "--target", "#racket")
	assert.Error(t, err)
	out, err := run(t, newImportCmd(), "import", file, "bounce", "--target", "#ball")
	require.NoError(t, err)
	assert.Contains(t, out, "targetKind: dom")
}

func TestDotCmd(t *testing.T) {
	_, file := writePage(t)
	out, err := run(t, newDotCmd(), "dot", file, "--highlight", "#ball")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.Contains(t, out, "fillcolor=orange")
}

func TestTraceLevel(t *testing.T) {
	_, file := writePage(t)
	_, err := run(t, newPathCmd(), "path", file, "span", "--trace", "debug")
	assert.NoError(t, err)
	_, err = run(t, newPathCmd(), "path", file, "span", "--trace", "verbose")
	assert.Error(t, err)
	assert.Contains(t, keyframes.TraceKeys, "keyframes.cli", "--trace must reach the command tracer")
}

func TestStartLabel(t *testing.T) {
	assert.Equal(t, "12.5", startLabel(maybe.Just(12.5)))
	assert.Equal(t, "0", startLabel(maybe.Just(0.0)))
	assert.Equal(t, "?", startLabel(maybe.Nothing[float64]()))
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "kfx.env")
	require.NoError(t, os.WriteFile(env, []byte("KFX_FPS=25\n"), 0644))
	if _, set := os.LookupEnv("KFX_FPS"); set {
		t.Skip("KFX_FPS is set in the environment")
	}
	defer os.Unsetenv("KFX_FPS")
	require.NoError(t, loadEnv(env))
	config, err := engineConfig(0, false)
	require.NoError(t, err)
	assert.Equal(t, 25.0, config.FrameRate)
	config, err = engineConfig(50, true)
	require.NoError(t, err)
	assert.Equal(t, 50.0, config.FrameRate, "command line overrides the environment")
	assert.True(t, config.StrictOrigins)
	assert.NoError(t, loadEnv(filepath.Join(dir, "missing.env")))
}
