package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// errSilent is returned by commands that already reported their failure.
var errSilent = errors.New("silent failure")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "blockgen [file]",
		Short:             "Generate Dart code from visual list blocks",
		Long:              "Generate Dart code from a block program exported by the visual editor as JSON or YAML.",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              generateHandler,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.blockgen.yaml)")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("verbose", "v", false, "log generation details to stderr")
	flags.StringP("output", "o", "text", "output format (text|json)")
	addInputFlags(root)
	addGenerateFlags(root)

	root.AddCommand(
		newGenerateCmd(),
		newValidateCmd(),
		newKindsCmd(),
		newVersionCmd(),
	)
	return root
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("stdin", false, "read the block document from stdin")
	cmd.Flags().String("select", "", "JMESPath expression locating the blocks in the document")
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().Int("workers", 1, "number of top-level blocks generated concurrently")
	cmd.Flags().String("out", "", "output target: - for stdout, a directory, or s3://bucket/prefix")
	cmd.Flags().String("indent", "", "indentation inside main (default two spaces)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprint(os.Stderr, formatError(err))
		}
		os.Exit(1)
	}
}
