package cli

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemalab/internal/app"
)

type watchOptions struct {
	generateOptions
	Debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	opts := watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate benchmark sources whenever a schema changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.SchemaDir, "schema-dir", "schemas", "Bebop schema source directory")
	cmd.Flags().StringVar(&opts.BebopOut, "bebop-out", filepath.Join("gen", "bebop"), "Output directory for bebop artifacts")
	cmd.Flags().StringVar(&opts.ProtoOut, "proto-out", filepath.Join("gen", "proto"), "Output directory for protobuf artifacts")
	cmd.Flags().StringSliceVar(&opts.ProtoFiles, "proto-file", []string{filepath.Join("schemas", "jazz.proto")}, "Protobuf input files")
	cmd.Flags().StringSliceVar(&opts.ProtoIncludes, "proto-include", []string{"schemas"}, "Protobuf include directories")
	cmd.Flags().StringVar(&opts.CompilerPath, "compiler-path", "", "Override the resolved bebop compiler path")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", 250*time.Millisecond, "Quiet window before regenerating")

	_ = viper.BindPFlag("schema_dir", cmd.Flags().Lookup("schema-dir"))
	_ = viper.BindPFlag("bebop_out", cmd.Flags().Lookup("bebop-out"))
	_ = viper.BindPFlag("proto_out", cmd.Flags().Lookup("proto-out"))
	_ = viper.BindPFlag("proto_files", cmd.Flags().Lookup("proto-file"))
	_ = viper.BindPFlag("proto_includes", cmd.Flags().Lookup("proto-include"))
	_ = viper.BindPFlag("compiler_path", cmd.Flags().Lookup("compiler-path"))

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, opts watchOptions) error {
	service := newAppService()
	err := service.Watch(ctx, app.WatchRequest{
		Generate: app.GenerateRequest{
			SchemaDir:     resolveString(cmd, opts.SchemaDir, "schema_dir", "schema-dir"),
			BebopOutDir:   resolveString(cmd, opts.BebopOut, "bebop_out", "bebop-out"),
			ProtoOutDir:   resolveString(cmd, opts.ProtoOut, "proto_out", "proto-out"),
			ProtoFiles:    resolveStrings(cmd, opts.ProtoFiles, "proto_files", "proto-file"),
			ProtoIncludes: resolveStrings(cmd, opts.ProtoIncludes, "proto_includes", "proto-include"),
			CompilerPath:  resolveString(cmd, opts.CompilerPath, "compiler_path", "compiler-path"),
		},
		Debounce: opts.Debounce,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
