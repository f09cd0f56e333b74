package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemalab/internal/app"
)

type generateOptions struct {
	SchemaDir     string
	BebopOut      string
	ProtoOut      string
	ProtoFiles    []string
	ProtoIncludes []string
	CompilerPath  string
	MinVersion    string
	Manifest      string
	Clean         bool
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate benchmark sources from bebop and protobuf schemas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.SchemaDir, "schema-dir", "schemas", "Bebop schema source directory")
	cmd.Flags().StringVar(&opts.BebopOut, "bebop-out", filepath.Join("gen", "bebop"), "Output directory for bebop artifacts")
	cmd.Flags().StringVar(&opts.ProtoOut, "proto-out", filepath.Join("gen", "proto"), "Output directory for protobuf artifacts")
	cmd.Flags().StringSliceVar(&opts.ProtoFiles, "proto-file", []string{filepath.Join("schemas", "jazz.proto")}, "Protobuf input files")
	cmd.Flags().StringSliceVar(&opts.ProtoIncludes, "proto-include", []string{"schemas"}, "Protobuf include directories")
	cmd.Flags().StringVar(&opts.CompilerPath, "compiler-path", "", "Override the resolved bebop compiler path")
	cmd.Flags().StringVar(&opts.MinVersion, "min-compiler-version", "", "Minimum bebop compiler version")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Write a generation manifest to this path")
	cmd.Flags().BoolVar(&opts.Clean, "clean", false, "Remove both output directories before generating")

	_ = viper.BindPFlag("schema_dir", cmd.Flags().Lookup("schema-dir"))
	_ = viper.BindPFlag("bebop_out", cmd.Flags().Lookup("bebop-out"))
	_ = viper.BindPFlag("proto_out", cmd.Flags().Lookup("proto-out"))
	_ = viper.BindPFlag("proto_files", cmd.Flags().Lookup("proto-file"))
	_ = viper.BindPFlag("proto_includes", cmd.Flags().Lookup("proto-include"))
	_ = viper.BindPFlag("compiler_path", cmd.Flags().Lookup("compiler-path"))
	_ = viper.BindPFlag("min_compiler_version", cmd.Flags().Lookup("min-compiler-version"))
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("clean", cmd.Flags().Lookup("clean"))

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		SchemaDir:          resolveString(cmd, opts.SchemaDir, "schema_dir", "schema-dir"),
		BebopOutDir:        resolveString(cmd, opts.BebopOut, "bebop_out", "bebop-out"),
		ProtoOutDir:        resolveString(cmd, opts.ProtoOut, "proto_out", "proto-out"),
		ProtoFiles:         resolveStrings(cmd, opts.ProtoFiles, "proto_files", "proto-file"),
		ProtoIncludes:      resolveStrings(cmd, opts.ProtoIncludes, "proto_includes", "proto-include"),
		CompilerPath:       resolveString(cmd, opts.CompilerPath, "compiler_path", "compiler-path"),
		MinCompilerVersion: resolveString(cmd, opts.MinVersion, "min_compiler_version", "min-compiler-version"),
		ManifestPath:       resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Clean:              resolveBool(cmd, opts.Clean, "clean", "clean"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("generated %d bebop and %d protobuf artifacts (compiler: %s)\n",
		len(result.BebopArtifacts), len(result.ProtoArtifacts), result.ToolPath)
	return nil
}
