package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Clean removes both generated-output directories. Regeneration itself
// never deletes stale files; cleaning is always this explicit step.
func (s Service) Clean(_ context.Context, req CleanRequest) (CleanResult, error) {
	var removed []string
	for _, dir := range []string{req.BebopOutDir, req.ProtoOutDir} {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return CleanResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to remove output directory").
				WithCause(err)
		}
		removed = append(removed, dir)
	}
	if len(removed) == 0 {
		return CleanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no output directories to clean")
	}
	return CleanResult{Removed: removed}, nil
}
