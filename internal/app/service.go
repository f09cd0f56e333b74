package app

import (
	"time"

	"schemalab/internal/adapters"
	"schemalab/internal/ports"
)

type Service struct {
	Compiler ports.SchemaCompilerPort
	ProtoGen ports.ProtoCodegenPort
	Probe    ports.ToolProbePort
	Manifest ports.ManifestPort
	Clock    func() time.Time
}

func NewService() Service {
	return Service{
		Compiler: adapters.NewBebopCompilerAdapter(),
		ProtoGen: adapters.NewProtoCodegenAdapter(""),
		Probe:    adapters.NewToolProbeAdapter(),
		Manifest: adapters.NewManifestWriterAdapter(),
		Clock:    time.Now,
	}
}
