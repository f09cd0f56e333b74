package types

type ManifestArtifact struct {
	Schema   string `yaml:"schema"`
	Artifact string `yaml:"artifact"`
	SHA256   string `yaml:"sha256,omitempty"`
}

// GenerationManifest records what one generate run produced.
type GenerationManifest struct {
	CreatedAt       string             `yaml:"created_at"`
	CompilerPath    string             `yaml:"compiler_path"`
	CompilerVersion string             `yaml:"compiler_version,omitempty"`
	Bebop           []ManifestArtifact `yaml:"bebop"`
	Proto           []ManifestArtifact `yaml:"proto"`
}
