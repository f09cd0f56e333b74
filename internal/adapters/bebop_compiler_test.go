package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompilerScript mimics bebopc: it copies the schema named by
// --files into the path named by the generator flag, and rejects any
// schema containing the BROKEN marker.
const stubCompilerScript = `#!/bin/sh
if grep -q BROKEN "$2"; then
  echo "parse error in $2" >&2
  exit 1
fi
cp "$2" "$4"
`

func writeStubTool(t *testing.T, dir string, name string, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func writeSchema(t *testing.T, dir string, name string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestBebopCompilerEmptyDirIsNoOp(t *testing.T) {
	root := t.TempDir()
	tool := writeStubTool(t, root, "bebopc", stubCompilerScript)
	srcDir := filepath.Join(root, "schemas")
	outDir := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))

	adapter := NewBebopCompilerAdapter()
	artifacts, err := adapter.CompileDir(tool, srcDir, outDir)
	require.NoError(t, err)
	assert.Empty(t, artifacts)

	// The output directory is still created for downstream steps.
	info, err := os.Stat(outDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBebopCompilerCompilesEverySchema(t *testing.T) {
	root := t.TempDir()
	tool := writeStubTool(t, root, "bebopc", stubCompilerScript)
	srcDir := filepath.Join(root, "schemas")
	outDir := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))
	writeSchema(t, srcDir, "a.bop", "struct A { int32 x; }")
	writeSchema(t, srcDir, "b.bop", "struct B { int32 y; }")
	// Non-schema files are ignored.
	writeSchema(t, srcDir, "README.md", "not a schema")

	adapter := NewBebopCompilerAdapter()
	artifacts, err := adapter.CompileDir(tool, srcDir, outDir)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, filepath.Join(outDir, "a.go"), artifacts[0].Artifact)
	assert.Equal(t, filepath.Join(outDir, "b.go"), artifacts[1].Artifact)

	first, err := os.ReadFile(artifacts[0].Artifact)
	require.NoError(t, err)

	// Re-running with unchanged inputs is idempotent.
	_, err = adapter.CompileDir(tool, srcDir, outDir)
	require.NoError(t, err)
	second, err := os.ReadFile(artifacts[0].Artifact)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBebopCompilerMissingTool(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "schemas")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))

	adapter := NewBebopCompilerAdapter()
	_, err := adapter.CompileDir(filepath.Join(root, "nope", "bebopc"), srcDir, filepath.Join(root, "out"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestBebopCompilerNonExecutableTool(t *testing.T) {
	root := t.TempDir()
	tool := filepath.Join(root, "bebopc")
	require.NoError(t, os.WriteFile(tool, []byte(stubCompilerScript), 0644))
	srcDir := filepath.Join(root, "schemas")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))

	adapter := NewBebopCompilerAdapter()
	_, err := adapter.CompileDir(tool, srcDir, filepath.Join(root, "out"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestBebopCompilerMissingSchemaDir(t *testing.T) {
	root := t.TempDir()
	tool := writeStubTool(t, root, "bebopc", stubCompilerScript)

	adapter := NewBebopCompilerAdapter()
	_, err := adapter.CompileDir(tool, filepath.Join(root, "missing"), filepath.Join(root, "out"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestBebopCompilerFailFast(t *testing.T) {
	root := t.TempDir()
	tool := writeStubTool(t, root, "bebopc", stubCompilerScript)
	srcDir := filepath.Join(root, "schemas")
	outDir := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))
	writeSchema(t, srcDir, "a.bop", "struct A { int32 x; }")
	writeSchema(t, srcDir, "b.bop", "BROKEN")
	writeSchema(t, srcDir, "c.bop", "struct C { int32 z; }")

	adapter := NewBebopCompilerAdapter()
	_, err := adapter.CompileDir(tool, srcDir, outDir)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))

	// The failing schema is identified by name.
	var builder *errbuilder.ErrBuilder
	require.True(t, errors.As(err, &builder))
	assert.Contains(t, builder.Msg, "b.bop")

	// Schemas before the failure were compiled, schemas after were not.
	_, statErr := os.Stat(filepath.Join(outDir, "a.go"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(outDir, "c.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewBebopCompilerAdapterFor(t *testing.T) {
	tests := []struct {
		generator string
		wantExt   string
	}{
		{"go", ".go"},
		{"rust", ".rs"},
		{"ts", ".ts"},
		{"", ".go"},
		{"kotlin", ".kotlin"},
	}
	for _, tt := range tests {
		adapter := NewBebopCompilerAdapterFor(tt.generator)
		assert.Equal(t, tt.wantExt, adapter.ArtifactExt, "generator %q", tt.generator)
	}
}
