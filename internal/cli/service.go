package cli

import (
	"strings"

	"github.com/spf13/viper"

	"schemalab/internal/adapters"
	"schemalab/internal/app"
)

// newAppService builds the app service with config-driven adapter
// overrides: the bebopc generator label and the protoc binary.
func newAppService() app.Service {
	service := app.NewService()
	if generator := strings.TrimSpace(viper.GetString("generator")); generator != "" {
		service.Compiler = adapters.NewBebopCompilerAdapterFor(generator)
	}
	if binary := strings.TrimSpace(viper.GetString("protoc_path")); binary != "" {
		service.ProtoGen = adapters.NewProtoCodegenAdapter(binary)
	}
	return service
}
