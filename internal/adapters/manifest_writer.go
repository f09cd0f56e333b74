package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"schemalab/internal/ports"
	"schemalab/internal/types"
)

// ManifestWriterAdapter persists a generation manifest as YAML,
// digesting each recorded artifact along the way.
type ManifestWriterAdapter struct{}

func NewManifestWriterAdapter() ManifestWriterAdapter {
	return ManifestWriterAdapter{}
}

func (a ManifestWriterAdapter) Write(path string, manifest types.GenerationManifest) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is empty")
	}
	if err := digestArtifacts(manifest.Bebop); err != nil {
		return err
	}
	if err := digestArtifacts(manifest.Proto); err != nil {
		return err
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode manifest").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create manifest directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest").
			WithCause(err)
	}
	return nil
}

func digestArtifacts(entries []types.ManifestArtifact) error {
	for i, entry := range entries {
		if entry.SHA256 != "" {
			continue
		}
		data, err := os.ReadFile(entry.Artifact)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to digest artifact").
				WithCause(err)
		}
		sum := sha256.Sum256(data)
		entries[i].SHA256 = hex.EncodeToString(sum[:])
	}
	return nil
}

var _ ports.ManifestPort = ManifestWriterAdapter{}
