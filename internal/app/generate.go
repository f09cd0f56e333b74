package app

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schemalab/internal/core"
	"schemalab/internal/types"
)

// Generate runs the full preparation sequence: resolve the compiler,
// optionally clean, batch-compile the bebop schemas, then generate the
// protobuf bindings. The first failing step aborts the run and its
// error is returned unchanged.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	schemaDir := strings.TrimSpace(req.SchemaDir)
	if schemaDir == "" {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema directory is required")
	}
	bebopOut := strings.TrimSpace(req.BebopOutDir)
	protoOut := strings.TrimSpace(req.ProtoOutDir)
	if bebopOut == "" || protoOut == "" {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("both output directories are required")
	}

	toolPath, err := s.resolveToolPath(req.CompilerPath, req.Platform)
	if err != nil {
		return GenerateResult{}, err
	}
	log.Debug().Str("tool", toolPath).Msg("resolved schema compiler")

	if req.Clean {
		if _, err := s.Clean(ctx, CleanRequest{BebopOutDir: bebopOut, ProtoOutDir: protoOut}); err != nil {
			return GenerateResult{}, err
		}
	}

	version := ""
	if minimum := strings.TrimSpace(req.MinCompilerVersion); minimum != "" {
		version, err = s.checkCompilerVersion(toolPath, minimum)
		if err != nil {
			return GenerateResult{}, err
		}
	}

	bebopArtifacts, err := s.Compiler.CompileDir(toolPath, schemaDir, bebopOut)
	if err != nil {
		return GenerateResult{}, err
	}
	log.Info().Int("schemas", len(bebopArtifacts)).Str("out", bebopOut).Msg("compiled bebop schemas")

	protoArtifacts, err := s.ProtoGen.Generate(types.CodegenRequest{
		OutputDir: protoOut,
		Inputs:    req.ProtoFiles,
		Includes:  req.ProtoIncludes,
	})
	if err != nil {
		return GenerateResult{}, err
	}
	log.Info().Int("inputs", len(protoArtifacts)).Str("out", protoOut).Msg("generated protobuf bindings")

	if manifestPath := strings.TrimSpace(req.ManifestPath); manifestPath != "" {
		manifest := types.GenerationManifest{
			CreatedAt:       s.Clock().UTC().Format(time.RFC3339),
			CompilerPath:    toolPath,
			CompilerVersion: version,
			Bebop:           manifestEntries(bebopArtifacts),
			Proto:           manifestEntries(protoArtifacts),
		}
		if err := s.Manifest.Write(manifestPath, manifest); err != nil {
			return GenerateResult{}, err
		}
	}

	return GenerateResult{
		ToolPath:       toolPath,
		BebopArtifacts: bebopArtifacts,
		ProtoArtifacts: protoArtifacts,
	}, nil
}

// resolveToolPath prefers an explicit override, then falls back to the
// compiled-in platform table. The platform identifier defaults to the
// build host.
func (s Service) resolveToolPath(override string, platform string) (string, error) {
	if path := strings.TrimSpace(override); path != "" {
		return path, nil
	}
	goos := strings.TrimSpace(platform)
	if goos == "" {
		goos = runtime.GOOS
	}
	return core.ResolveToolPath(types.FamilyForGOOS(goos))
}

func (s Service) checkCompilerVersion(toolPath string, minimum string) (string, error) {
	required, err := semver.NewVersion(minimum)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("minimum compiler version is not semver").
			WithCause(err)
	}
	version, err := s.Probe.Version(toolPath)
	if err != nil {
		return "", err
	}
	actual, err := semver.NewVersion(version)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("compiler reported a non-semver version").
			WithCause(err)
	}
	if actual.LessThan(required) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("schema compiler %s is older than required %s", actual, required))
	}
	return version, nil
}

func manifestEntries(artifacts []types.GeneratedArtifact) []types.ManifestArtifact {
	entries := make([]types.ManifestArtifact, 0, len(artifacts))
	for _, artifact := range artifacts {
		entries = append(entries, types.ManifestArtifact{
			Schema:   artifact.Schema,
			Artifact: artifact.Artifact,
		})
	}
	return entries
}
