package adapters

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"schemalab/internal/ports"
	"schemalab/internal/shared"
	"schemalab/internal/types"
)

// ProtoCodegenAdapter runs protoc once over all requested inputs.
type ProtoCodegenAdapter struct {
	// Binary is the protoc executable name or path.
	Binary string
}

func NewProtoCodegenAdapter(binary string) ProtoCodegenAdapter {
	if strings.TrimSpace(binary) == "" {
		binary = "protoc"
	}
	return ProtoCodegenAdapter{Binary: binary}
}

func (a ProtoCodegenAdapter) Generate(req types.CodegenRequest) ([]types.GeneratedArtifact, error) {
	// Reject an empty input set before touching the generator at all.
	if len(req.Inputs) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no protobuf input files supplied")
	}
	if strings.TrimSpace(req.OutputDir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	binary, err := exec.LookPath(a.Binary)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("protobuf generator not found: %s", a.Binary)).
			WithCause(err)
	}
	if err := os.MkdirAll(req.OutputDir, 0o750); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}

	includes := req.Includes
	if len(includes) == 0 {
		for _, input := range req.Inputs {
			includes = append(includes, filepath.Dir(input))
		}
	}
	var args []string
	for _, include := range includes {
		args = append(args, "-I", include)
	}
	args = append(args, "--go_out="+req.OutputDir, "--go_opt=paths=source_relative")
	args = append(args, req.Inputs...)

	cmd := exec.Command(binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("protobuf generation failed").
			WithCause(shared.CommandError(output, err))
	}

	artifacts := make([]types.GeneratedArtifact, 0, len(req.Inputs))
	for _, input := range req.Inputs {
		artifacts = append(artifacts, types.GeneratedArtifact{
			Schema:   input,
			Artifact: filepath.Join(req.OutputDir, shared.ArtifactName(input, ".pb.go")),
		})
	}
	return artifacts, nil
}

var _ ports.ProtoCodegenPort = ProtoCodegenAdapter{}
