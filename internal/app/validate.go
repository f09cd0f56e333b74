package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"schemalab/internal/types"
)

// Validate checks an invocation without spawning either generator: the
// schema directory must be readable, the resolved compiler and every
// named protobuf input must exist.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	schemaDir := strings.TrimSpace(req.SchemaDir)
	assert.NotEmpty(ctx, schemaDir, "schema directory must be set")

	toolPath, err := s.resolveToolPath(req.CompilerPath, req.Platform)
	if err != nil {
		return ValidateResult{}, err
	}
	entries, err := os.ReadDir(schemaDir)
	if err != nil {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read schema directory: %s", schemaDir)).
			WithCause(err)
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), types.BebopSchemaExt) {
			count++
		}
	}
	if _, err := os.Stat(toolPath); err != nil {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("schema compiler not found: %s", toolPath)).
			WithCause(err)
	}
	for _, input := range req.ProtoFiles {
		if _, err := os.Stat(input); err != nil {
			return ValidateResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("protobuf input not found: %s", input)).
				WithCause(err)
		}
	}
	return ValidateResult{ToolPath: toolPath, SchemaCount: count}, nil
}
