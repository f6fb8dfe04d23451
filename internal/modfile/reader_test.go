package modfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestResources(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose; the declared order is alphabetical.
	writeFile(t, dir, "02-second.html", "<p>two</p>")
	writeFile(t, dir, "01-first.html", "<p>one</p>")
	writeFile(t, dir, "03-third.html", "<p>three</p>")
	writeFile(t, dir, "notes.txt", "ignored")

	resources, err := Resources(dir)
	require.NoError(t, err)

	require.Len(t, resources, 3)
	assert.Equal(t, "01-first.html", resources[0].Name)
	assert.Equal(t, "02-second.html", resources[1].Name)
	assert.Equal(t, "03-third.html", resources[2].Name)
	assert.Equal(t, "<p>one</p>", resources[0].Content)
}

func TestResourcesEmptyDir(t *testing.T) {
	resources, err := Resources(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestResourcesUnreadable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01-ok.html", "<p>ok</p>")
	// A directory with a .html name matches the glob but cannot be
	// read as a file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "02-broken.html"), 0o755))

	resources, err := Resources(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read resource")
	assert.Nil(t, resources)
}

func TestResourcesNonRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "hidden.html", "<p>nested</p>")
	writeFile(t, dir, "top.html", "<p>top</p>")

	resources, err := Resources(dir)
	require.NoError(t, err)

	require.Len(t, resources, 1)
	assert.Equal(t, "top.html", resources[0].Name)
}

func TestModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "module.yaml", "module:\n  name: Intro\n  description: An intro module\n")

	mod, err := Module(dir)
	require.NoError(t, err)

	assert.Equal(t, "Intro", mod.Name)
	assert.Equal(t, "An intro module", mod.Description)
}

func TestModuleFoundInSubdirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "meta")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "module.yml", "module:\n  name: Deep\n  description: Nested description\n")

	mod, err := Module(dir)
	require.NoError(t, err)
	assert.Equal(t, "Deep", mod.Name)
}

func TestModuleNoDescriptionFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.html", "<p>content</p>")

	mod, err := Module(dir)
	assert.True(t, errors.Is(err, ErrNoDescription))
	assert.Nil(t, mod)
}

func TestModuleMultipleDescriptionFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "module:\n  name: A\n  description: a\n")
	writeFile(t, dir, "b.yml", "module:\n  name: B\n  description: b\n")

	mod, err := Module(dir)
	assert.True(t, errors.Is(err, ErrMultipleDescription))
	assert.Nil(t, mod)
}

func TestModuleMissingFields(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing description", "module:\n  name: Intro\n"},
		{"missing name", "module:\n  description: desc\n"},
		{"missing module key", "name: Intro\ndescription: desc\n"},
		{"empty mapping", "module: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "module.yaml", tt.yaml)

			mod, err := Module(dir)
			assert.Error(t, err)
			assert.Nil(t, mod)
		})
	}
}

func TestModuleUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "module.yaml", "module:\n  name: Intro\n  description: desc\n  author: someone\n")

	mod, err := Module(dir)
	assert.Error(t, err)
	assert.Nil(t, mod)
}

func TestModuleInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "module.yaml", "module: [unclosed\n")

	mod, err := Module(dir)
	assert.Error(t, err)
	assert.Nil(t, mod)
}
