// Package cli implements the utilkit command line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"utilkit/pkg/config"
	apperrors "utilkit/pkg/errors"
	"utilkit/pkg/logger"

	"github.com/spf13/cobra"
)

const ServiceName = "utilkit"

// app holds state shared by subcommands for a single invocation.
type app struct {
	cfg      *config.Config
	jsonErrs bool
	envFiles []string
}

func (a *app) log() *logger.Logger {
	if a.cfg == nil || a.cfg.Log == nil {
		return logger.Nop()
	}
	return a.cfg.Log
}

// NewRootCommand builds the command tree. Each call returns an independent tree
// so tests can run commands in isolation.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "utilkit",
		Short:         "Format, parse, sanitize and generate values from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotenv(a.envFiles...); err != nil {
				return apperrors.Wrap(err, apperrors.CodeInvalidInput, "failed to load environment file")
			}
			cfg, err := config.Load(ServiceName)
			if err != nil {
				return apperrors.Wrap(err, apperrors.CodeInvalidInput, "invalid configuration")
			}
			a.cfg = cfg
			a.log().Debug("Running command", "command", cmd.Name())
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&a.jsonErrs, "json", false, "print errors as JSON documents")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "environment files to load (default .env)")

	root.AddCommand(
		newFormatNumberCommand(),
		newParseNumberCommand(),
		newFormatCurrencyCommand(),
		newFormatBytesCommand(),
		newCapitalizeCommand(),
		newInitialsCommand(),
		newReplaceAtCommand(),
		newStripHTMLCommand(),
		newSlugifyCommand(),
		newRandomStringCommand(),
		newUUIDCommand(),
		newBaseURLCommand(a),
		newCleanURLCommand(),
	)

	return root
}

// Run executes the root command with args and reports failures to stderr, or
// to stdout as JSON when --json is set. It returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}

	if asJSON, _ := root.PersistentFlags().GetBool("json"); asJSON {
		if werr := apperrors.WriteError(stdout, err); werr != nil {
			fmt.Fprintln(stderr, "Error:", err)
		}
	} else {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return 1
}

// Execute runs the CLI against the process arguments and exits on failure.
func Execute() {
	if code := Run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func printLine(cmd *cobra.Command, a ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}
