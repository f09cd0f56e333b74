package app

import (
	"time"

	"schemalab/internal/types"
)

type GenerateRequest struct {
	SchemaDir          string
	BebopOutDir        string
	ProtoOutDir        string
	ProtoFiles         []string
	ProtoIncludes      []string
	CompilerPath       string
	Platform           string
	MinCompilerVersion string
	ManifestPath       string
	Clean              bool
}

type GenerateResult struct {
	ToolPath       string
	BebopArtifacts []types.GeneratedArtifact
	ProtoArtifacts []types.GeneratedArtifact
}

type ValidateRequest struct {
	SchemaDir    string
	ProtoFiles   []string
	CompilerPath string
	Platform     string
}

type ValidateResult struct {
	ToolPath    string
	SchemaCount int
}

type CleanRequest struct {
	BebopOutDir string
	ProtoOutDir string
}

type CleanResult struct {
	Removed []string
}

type ToolPathRequest struct {
	CompilerPath string
	Platform     string
}

type ToolPathResult struct {
	Family   types.PlatformFamily
	ToolPath string
}

type WatchRequest struct {
	Generate GenerateRequest
	Debounce time.Duration
}
