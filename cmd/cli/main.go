// Command badgectl renders funding badges without the HTTP server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/amirasaad/badges/infra/initializer"
	"github.com/amirasaad/badges/pkg/app"
	"github.com/amirasaad/badges/pkg/config"
	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/render"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	okText   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failText = color.New(color.FgRed, color.Bold).SprintFunc()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:           "badgectl",
		Short:         "Render funding badges from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load")

	root.AddCommand(newRenderCmd(&envFile, loadApp))
	root.AddCommand(newFallbackCmd())
	return root
}

// appLoader builds the badge application from an env file.
type appLoader func(envFile string, logOutput io.Writer) (*app.App, error)

func loadApp(envFile string, logOutput io.Writer) (*app.App, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependenciesWithLogOutput(cfg, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return app.New(deps, cfg), nil
}

func newRenderCmd(envFile *string, load appLoader) *cobra.Command {
	var (
		req     badge.Request
		debug   bool
		out     string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch badge metadata and write the rendered SVG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Debug = debug
			a, err := load(*envFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			res, err := a.BadgeService.Generate(ctx, req)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s/%s#%s failed in %s: %v\n",
					failText("FAIL"), req.Org, req.Repo, req.Number, res.FailedIn, err)
				return err
			}
			if err := writeSVG(cmd, out, res.Badge.SVG); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s/%s#%s %dx%d show_amount=%t\n",
				okText("OK"), req.Org, req.Repo, req.Number,
				res.Badge.Width, res.Badge.Height, badge.ShowAmount(res.Metadata))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Org, "org", "", "GitHub organization")
	cmd.Flags().StringVar(&req.Repo, "repo", "", "GitHub repository")
	cmd.Flags().StringVar(&req.Number, "number", "", "Issue number")
	cmd.Flags().BoolVar(&debug, "debug", false, "Draw the layout debug overlay")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout")
	_ = cmd.MarkFlagRequired("org")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

func newFallbackCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "fallback",
		Short: "Write the transparent 1x1 fallback SVG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeSVG(cmd, out, render.Fallback())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func writeSVG(cmd *cobra.Command, path string, svg []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(svg)
		return err
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s wrote %s\n", okText("OK"), path)
	return nil
}
