package cli

import (
	"fmt"
	"strconv"
	"strings"
	apperrors "utilkit/pkg/errors"
	"utilkit/pkg/sanitizer"
	"utilkit/pkg/strutil"

	"github.com/spf13/cobra"
)

func newCapitalizeCommand() *cobra.Command {
	var opts strutil.CapitalizeOptions

	cmd := &cobra.Command{
		Use:   "capitalize TEXT...",
		Short: "Capitalize every word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, strutil.CapitalizeWords(strings.Join(args, " "), opts))
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Trim, "trim", false, "trim surrounding whitespace")
	cmd.Flags().BoolVar(&opts.CollapseSpaces, "collapse", false, "collapse whitespace runs")
	cmd.Flags().BoolVar(&opts.LowerRest, "lower-rest", false, "lower-case the rest of every word")
	return cmd
}

func newInitialsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "initials NAME...",
		Short:   "Print the initials of a name",
		Example: `  utilkit initials John Doe`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, strutil.GetInitialsName(strings.Join(args, " ")))
			return nil
		},
	}
}

func newReplaceAtCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "replace-at INDEX TEXT REPLACEMENT",
		Short:   "Replace the character at a position",
		Example: `  utilkit replace-at 3 hello X`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return apperrors.InvalidInput("index", fmt.Sprintf("%q is not an integer", args[0]))
			}
			out, err := strutil.ReplaceAt(index, args[1], args[2])
			if err != nil {
				return err
			}
			printLine(cmd, out)
			return nil
		},
	}
}

func newStripHTMLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip-html HTML",
		Short: "Print the text content of an HTML fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, sanitizer.StripHTMLTags(args[0]))
			return nil
		},
	}
}

func newSlugifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slugify TEXT...",
		Short: "Turn text into a URL slug",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, sanitizer.Slugify(strings.Join(args, " ")))
			return nil
		},
	}
}
