package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemalab/internal/app"
)

type validateOptions struct {
	SchemaDir    string
	ProtoFiles   []string
	CompilerPath string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check schema inputs and the compiler without generating",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.SchemaDir, "schema-dir", "schemas", "Bebop schema source directory")
	cmd.Flags().StringSliceVar(&opts.ProtoFiles, "proto-file", []string{filepath.Join("schemas", "jazz.proto")}, "Protobuf input files")
	cmd.Flags().StringVar(&opts.CompilerPath, "compiler-path", "", "Override the resolved bebop compiler path")
	_ = viper.BindPFlag("schema_dir", cmd.Flags().Lookup("schema-dir"))
	_ = viper.BindPFlag("proto_files", cmd.Flags().Lookup("proto-file"))
	_ = viper.BindPFlag("compiler_path", cmd.Flags().Lookup("compiler-path"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		SchemaDir:    resolveString(cmd, opts.SchemaDir, "schema_dir", "schema-dir"),
		ProtoFiles:   resolveStrings(cmd, opts.ProtoFiles, "proto_files", "proto-file"),
		CompilerPath: resolveString(cmd, opts.CompilerPath, "compiler_path", "compiler-path"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %d bebop schemas, compiler %s\n", result.SchemaCount, result.ToolPath)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
