package openscad

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScad(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	main := writeScad(t, dir, "main.scad", `use <lib/shapes.scad>
// include <ignored.scad>
include <./params.scad>
cube(10);
`)
	shapes := writeScad(t, dir, "lib/shapes.scad", "include <../params.scad>\nmodule tile() {}\n")
	params := writeScad(t, dir, "params.scad", "size = 10;\n")

	deps, err := NewRenderer(dir).ResolveDependencies("main.scad")
	require.NoError(t, err)
	assert.Equal(t, []string{main, shapes, params}, deps)
}

func TestResolveDependenciesCycle(t *testing.T) {
	dir := t.TempDir()
	a := writeScad(t, dir, "a.scad", "use <b.scad>\n")
	b := writeScad(t, dir, "b.scad", "use <a.scad>\n")

	deps, err := NewRenderer(dir).ResolveDependencies(a)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, deps)
}

func TestResolveDependenciesMissing(t *testing.T) {
	dir := t.TempDir()
	writeScad(t, dir, "main.scad", "use <nowhere.scad>\n")

	_, err := NewRenderer(dir).ResolveDependencies("main.scad")
	assert.ErrorContains(t, err, "failed to open")
}

func TestRenderWithoutBinary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	r.binary = "openscad-does-not-exist"

	err := r.RenderToSTL(context.Background(), "main.scad", "out.stl")
	assert.True(t, errors.Is(err, ErrNotInstalled))
}
