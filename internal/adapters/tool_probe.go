package adapters

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"schemalab/internal/ports"
	"schemalab/internal/shared"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z.\-]+)?`)

// ToolProbeAdapter asks an external tool for its version.
type ToolProbeAdapter struct{}

func NewToolProbeAdapter() ToolProbeAdapter {
	return ToolProbeAdapter{}
}

// Version runs "<tool> --version" and extracts the first semver-shaped
// token from its output.
func (a ToolProbeAdapter) Version(toolPath string) (string, error) {
	cmd := exec.Command(toolPath, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to query compiler version").
			WithCause(shared.CommandError(output, err))
	}
	raw := versionPattern.FindString(string(output))
	if raw == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("compiler version output is not semver: %s", strings.TrimSpace(string(output))))
	}
	version, err := semver.NewVersion(raw)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("compiler version output is not semver: %s", raw)).
			WithCause(err)
	}
	return version.String(), nil
}

var _ ports.ToolProbePort = ToolProbeAdapter{}
