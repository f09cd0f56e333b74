package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemalab/internal/app"
)

type toolPathOptions struct {
	Platform     string
	CompilerPath string
}

func newToolPathCommand() *cobra.Command {
	opts := toolPathOptions{}
	cmd := &cobra.Command{
		Use:   "tool-path",
		Short: "Print the bebop compiler path resolved for a platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToolPath(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Platform identifier (GOOS value, defaults to the build host)")
	cmd.Flags().StringVar(&opts.CompilerPath, "compiler-path", "", "Override the resolved bebop compiler path")
	_ = viper.BindPFlag("platform", cmd.Flags().Lookup("platform"))
	_ = viper.BindPFlag("compiler_path", cmd.Flags().Lookup("compiler-path"))
	return cmd
}

func runToolPath(ctx context.Context, cmd *cobra.Command, opts toolPathOptions) error {
	service := newAppService()
	result, err := service.ToolPath(ctx, app.ToolPathRequest{
		Platform:     resolveString(cmd, opts.Platform, "platform", "platform"),
		CompilerPath: resolveString(cmd, opts.CompilerPath, "compiler_path", "compiler-path"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", result.Family, result.ToolPath)
	return nil
}
