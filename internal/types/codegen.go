package types

// BebopSchemaExt is the file extension of bebop schema definitions.
const BebopSchemaExt = ".bop"

// CodegenRequest describes one protobuf generator run. All inputs are
// handed to the generator in a single process invocation.
type CodegenRequest struct {
	OutputDir string
	Inputs    []string
	Includes  []string
}

// GeneratedArtifact pairs a schema input with the artifact generated
// from it.
type GeneratedArtifact struct {
	Schema   string
	Artifact string
}
