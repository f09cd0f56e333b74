package ports

import "schemalab/internal/types"

// SchemaCompilerPort batch-compiles a directory of bebop schemas with
// an external compiler executable.
type SchemaCompilerPort interface {
	// CompileDir compiles every schema found in srcDir into outDir,
	// one artifact per schema, aborting the batch on the first
	// failure. An empty srcDir is a successful no-op.
	CompileDir(toolPath string, srcDir string, outDir string) ([]types.GeneratedArtifact, error)
}

// ProtoCodegenPort runs the protobuf generator for one request.
type ProtoCodegenPort interface {
	Generate(req types.CodegenRequest) ([]types.GeneratedArtifact, error)
}

// ToolProbePort reports the version string an external tool prints.
type ToolProbePort interface {
	Version(toolPath string) (string, error)
}

// ManifestPort persists a generation manifest.
type ManifestPort interface {
	Write(path string, manifest types.GenerationManifest) error
}
