package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flarelath/config"
)

func init() {
	color.NoColor = true
}

// pathDoc writes a path graph 0..n-1 with "bar" on 0 and "foo" on the rest.
func pathDoc(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("vertices:\n")
	for i := 0; i < n; i++ {
		member := "foo"
		if i == 0 {
			member = "bar"
		}
		fmt.Fprintf(&b, "  - {id: %q, members: [%s]}\n", fmt.Sprint(i), member)
	}
	b.WriteString("edges:\n")
	for i := 1; i < n; i++ {
		fmt.Fprintf(&b, "  - {from: %q, to: %q}\n", fmt.Sprint(i-1), fmt.Sprint(i))
	}

	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(args, &stdout, &stderr)

	return stdout.String(), err
}

func TestFlarenessCommand(t *testing.T) {
	out, err := run(t, "flareness", pathDoc(t, 6), "foo", "bar", "ghost", "--include-not-found")
	require.NoError(t, err)

	assert.Contains(t, out, "*** FLARE ONLY ***\nfoo\n")
	assert.Contains(t, out, "*** NOT FLARE NOR ISLAND ***\nbar\n")
	assert.Contains(t, out, "*** NOT FOUND ***\nghost\n")
	assert.Regexp(t, `foo\s+1\s+4\s+\[4\]`, out)
	assert.Regexp(t, `ghost\s+-1\s+-`, out)
}

func TestFlarenessCommand_AllEntities(t *testing.T) {
	out, err := run(t, "flareness", pathDoc(t, 6))
	require.NoError(t, err)
	assert.Contains(t, out, "foo")
	assert.Contains(t, out, "bar")
}

func TestDetectCommand(t *testing.T) {
	out, err := run(t, "detect", pathDoc(t, 10), "--centrality", "harmonic", "--prune", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ORIGIN")
	assert.Regexp(t, `^0\s+0\s`, lines[1])
	assert.Regexp(t, `^1\s+9\s`, lines[2])
	assert.True(t, strings.HasSuffix(lines[2], "6,7,8,9"))
}

func TestDetectCommand_RejectsUnknownCentrality(t *testing.T) {
	_, err := run(t, "detect", pathDoc(t, 4), "--centrality", "pagerank")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestAnnotateCommand(t *testing.T) {
	out, err := run(t, "annotate", pathDoc(t, 5))
	require.NoError(t, err)
	assert.Contains(t, out, "Hflare")
	assert.Contains(t, out, "Bcentrality")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "*** PURE ISLAND ***\neverywhere\n")
	assert.Contains(t, out, "Center")

	out, err = run(t, "demo", "--shape", "path", "--size", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "*** FLARE ONLY ***\ntail\n")
}

func TestConfigFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "flarelath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("workers: 0\n"), 0o600))

	_, err := run(t, "--config", cfgPath, "demo")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "--log-level", "loud", "demo")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
