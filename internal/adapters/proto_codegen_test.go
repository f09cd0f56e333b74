package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemalab/internal/types"
)

// recordingProtocScript writes each argument on its own line so the
// test can inspect exactly one invocation.
func recordingProtocScript(argsFile string) string {
	return fmt.Sprintf(`#!/bin/sh
printf 'INVOKE\n' >> %[1]q
for a in "$@"; do
  printf '%%s\n' "$a" >> %[1]q
done
`, argsFile)
}

func TestProtoCodegenEmptyInputs(t *testing.T) {
	// A broken binary path proves the check runs before any lookup.
	adapter := NewProtoCodegenAdapter("/nonexistent/protoc")
	_, err := adapter.Generate(types.CodegenRequest{OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestProtoCodegenEmptyOutputDir(t *testing.T) {
	adapter := NewProtoCodegenAdapter("/nonexistent/protoc")
	_, err := adapter.Generate(types.CodegenRequest{Inputs: []string{"jazz.proto"}})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestProtoCodegenMissingBinary(t *testing.T) {
	adapter := NewProtoCodegenAdapter("/nonexistent/protoc")
	_, err := adapter.Generate(types.CodegenRequest{
		OutputDir: t.TempDir(),
		Inputs:    []string{"jazz.proto"},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestProtoCodegenSingleInvocation(t *testing.T) {
	root := t.TempDir()
	argsFile := filepath.Join(root, "args.txt")
	binary := writeStubTool(t, root, "protoc", recordingProtocScript(argsFile))
	outDir := filepath.Join(root, "out")

	adapter := NewProtoCodegenAdapter(binary)
	artifacts, err := adapter.Generate(types.CodegenRequest{
		OutputDir: outDir,
		Inputs:    []string{"schemas/jazz.proto", "schemas/common.proto"},
		Includes:  []string{"schemas"},
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, filepath.Join(outDir, "jazz.pb.go"), artifacts[0].Artifact)
	assert.Equal(t, filepath.Join(outDir, "common.pb.go"), artifacts[1].Artifact)

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	recorded := string(data)
	assert.Equal(t, 1, strings.Count(recorded, "INVOKE"), "expected one process invocation")
	assert.Contains(t, recorded, "-I\nschemas\n")
	assert.Contains(t, recorded, "--go_out="+outDir)
	assert.Contains(t, recorded, "--go_opt=paths=source_relative")
	assert.Contains(t, recorded, "schemas/jazz.proto")
	assert.Contains(t, recorded, "schemas/common.proto")
}

func TestProtoCodegenDefaultsIncludesToInputDirs(t *testing.T) {
	root := t.TempDir()
	argsFile := filepath.Join(root, "args.txt")
	binary := writeStubTool(t, root, "protoc", recordingProtocScript(argsFile))

	adapter := NewProtoCodegenAdapter(binary)
	_, err := adapter.Generate(types.CodegenRequest{
		OutputDir: filepath.Join(root, "out"),
		Inputs:    []string{"proto/jazz.proto"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "-I\nproto\n")
}

func TestProtoCodegenFailureCarriesDiagnostics(t *testing.T) {
	root := t.TempDir()
	binary := writeStubTool(t, root, "protoc", "#!/bin/sh\necho 'jazz.proto: missing import' >&2\nexit 1\n")

	adapter := NewProtoCodegenAdapter(binary)
	_, err := adapter.Generate(types.CodegenRequest{
		OutputDir: filepath.Join(root, "out"),
		Inputs:    []string{"jazz.proto"},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestNewProtoCodegenAdapterDefaultBinary(t *testing.T) {
	assert.Equal(t, "protoc", NewProtoCodegenAdapter("").Binary)
	assert.Equal(t, "protoc-29", NewProtoCodegenAdapter("protoc-29").Binary)
}
