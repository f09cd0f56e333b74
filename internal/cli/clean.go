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

type cleanOptions struct {
	BebopOut string
	ProtoOut string
}

func newCleanCommand() *cobra.Command {
	opts := cleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove both generated-output directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.BebopOut, "bebop-out", filepath.Join("gen", "bebop"), "Output directory for bebop artifacts")
	cmd.Flags().StringVar(&opts.ProtoOut, "proto-out", filepath.Join("gen", "proto"), "Output directory for protobuf artifacts")
	_ = viper.BindPFlag("bebop_out", cmd.Flags().Lookup("bebop-out"))
	_ = viper.BindPFlag("proto_out", cmd.Flags().Lookup("proto-out"))
	return cmd
}

func runClean(ctx context.Context, cmd *cobra.Command, opts cleanOptions) error {
	service := newAppService()
	result, err := service.Clean(ctx, app.CleanRequest{
		BebopOutDir: resolveString(cmd, opts.BebopOut, "bebop_out", "bebop-out"),
		ProtoOutDir: resolveString(cmd, opts.ProtoOut, "proto_out", "proto-out"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("removed: %s\n", strings.Join(result.Removed, ", "))
	return nil
}
