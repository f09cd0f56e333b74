package app

import (
	"context"
	"runtime"
	"strings"

	"schemalab/internal/types"
)

// ToolPath reports the compiler path the generate step would use.
func (s Service) ToolPath(_ context.Context, req ToolPathRequest) (ToolPathResult, error) {
	goos := strings.TrimSpace(req.Platform)
	if goos == "" {
		goos = runtime.GOOS
	}
	path, err := s.resolveToolPath(req.CompilerPath, goos)
	if err != nil {
		return ToolPathResult{}, err
	}
	return ToolPathResult{Family: types.FamilyForGOOS(goos), ToolPath: path}, nil
}
