package adapters

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"schemalab/internal/ports"
	"schemalab/internal/shared"
	"schemalab/internal/types"
)

// artifactExts maps a bebopc generator label to the extension of the
// source files it emits.
var artifactExts = map[string]string{
	"go":   ".go",
	"cs":   ".cs",
	"ts":   ".ts",
	"rust": ".rs",
	"cpp":  ".hpp",
}

// BebopCompilerAdapter invokes the external bebopc compiler once per
// schema file found in the source directory.
type BebopCompilerAdapter struct {
	// Generator is the bebopc generator flag without dashes, e.g. "go".
	Generator string
	// ArtifactExt is the extension of generated artifacts, e.g. ".go".
	ArtifactExt string
}

func NewBebopCompilerAdapter() BebopCompilerAdapter {
	return NewBebopCompilerAdapterFor("go")
}

func NewBebopCompilerAdapterFor(generator string) BebopCompilerAdapter {
	generator = strings.TrimSpace(generator)
	if generator == "" {
		generator = "go"
	}
	ext, ok := artifactExts[generator]
	if !ok {
		ext = "." + generator
	}
	return BebopCompilerAdapter{Generator: generator, ArtifactExt: ext}
}

func (a BebopCompilerAdapter) CompileDir(toolPath string, srcDir string, outDir string) ([]types.GeneratedArtifact, error) {
	if strings.TrimSpace(toolPath) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("compiler path is empty")
	}
	if err := checkExecutable(toolPath); err != nil {
		return nil, err
	}
	// ReadDir returns entries sorted by name, which fixes the batch
	// order and makes regeneration deterministic.
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read schema directory: %s", srcDir)).
			WithCause(err)
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	var artifacts []types.GeneratedArtifact
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), types.BebopSchemaExt) {
			continue
		}
		schemaPath := filepath.Join(srcDir, entry.Name())
		outPath := filepath.Join(outDir, shared.ArtifactName(entry.Name(), a.ArtifactExt))
		cmd := exec.Command(toolPath, "--files", schemaPath, "--"+a.Generator, outPath)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("schema compilation failed: %s", entry.Name())).
				WithCause(shared.CommandError(output, err))
		}
		artifacts = append(artifacts, types.GeneratedArtifact{Schema: schemaPath, Artifact: outPath})
	}
	return artifacts, nil
}

func checkExecutable(toolPath string) error {
	info, err := os.Stat(toolPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("schema compiler not found: %s", toolPath)).
			WithCause(err)
	}
	if info.IsDir() {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("schema compiler is a directory: %s", toolPath))
	}
	// Permission bits are meaningless on Windows.
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("schema compiler is not executable: %s", toolPath))
	}
	return nil
}

var _ ports.SchemaCompilerPort = BebopCompilerAdapter{}
