package main

import (
	"fmt"
	"io"
	"os"

	psdextractor "github.com/kataras/psd-extractor"
	"github.com/kataras/psd-extractor/pkg/config"
	"github.com/kataras/psd-extractor/pkg/psd"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = psd.Version

// cli holds the state shared by every command of one invocation.
type cli struct {
	configPath string
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "psd-extractor",
		Short:         "Extract design specifications from layered design documents",
		Long:          "A tool to inspect the layer tree, colors, typography, vector outlines and hero structure of a decoded Photoshop-style document",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Configuration file (default "+config.DefaultPath+" when present)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "psd-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(
		c.infoCmd(),
		c.treeCmd(),
		c.findCmd(),
		c.searchCmd(),
		c.textCmd(),
		c.colorsCmd(),
		c.tokensCmd(),
		c.svgCmd(),
		c.previewCmd(),
		c.heroCmd(),
		c.reportCmd(),
		c.jsonCmd(),
		versionCmd,
	)

	return rootCmd
}

func load(path string) (*psdextractor.Document, error) {
	return psdextractor.Load(path, nil)
}

// cliLogger implements psdextractor.Logger with colored terminal output.
type cliLogger struct {
	w io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
}
