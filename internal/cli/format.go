package cli

import (
	"fmt"
	"strconv"
	"strings"
	apperrors "utilkit/pkg/errors"
	"utilkit/pkg/format"

	"github.com/spf13/cobra"
)

func newFormatNumberCommand() *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:     "format-number VALUE",
		Short:   "Group the digits of a number",
		Example: "  utilkit format-number 1234567.89\n  utilkit format-number 1234567,89 --separator .",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := format.FormatNumber(args[0], separator)
			if err != nil {
				return err
			}
			printLine(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&separator, "separator", "s", format.DefaultThousandsSeparator, "thousands separator")
	return cmd
}

func newParseNumberCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "parse-number TEXT",
		Short:   "Extract a number from formatted text",
		Example: `  utilkit parse-number "(1.234,56 €)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, strconv.FormatFloat(format.ParseNumber(strings.Join(args, " ")), 'f', -1, 64))
			return nil
		},
	}
}

func newFormatCurrencyCommand() *cobra.Command {
	var (
		country  string
		opts     format.CurrencyOptions
		position string
		decimals int
	)

	cmd := &cobra.Command{
		Use:     "format-currency VALUE",
		Short:   "Format an amount as currency",
		Example: "  utilkit format-currency 1234.5\n  utilkit format-currency 1234.5 --country DE",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out string
				err error
			)
			if country != "" {
				out, err = format.FormatCurrencyFor(args[0], country)
			} else {
				opts.Position = format.SymbolPosition(position)
				if cmd.Flags().Changed("decimals") {
					opts.Decimals = format.Decimals(decimals)
				}
				out, err = format.FormatCurrency(args[0], opts)
			}
			if err != nil {
				return err
			}
			printLine(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&country, "country", "c", "", "use the currency conventions of a country code (overrides other flags)")
	cmd.Flags().StringVar(&opts.Symbol, "symbol", "", "currency symbol (default \"$\")")
	cmd.Flags().StringVarP(&opts.Separator, "separator", "s", "", "thousands separator (default \",\")")
	cmd.Flags().StringVar(&position, "position", "", "symbol position: prefix or suffix (default prefix)")
	cmd.Flags().IntVar(&decimals, "decimals", 2, "fraction digits")
	return cmd
}

func newFormatBytesCommand() *cobra.Command {
	var iec bool

	cmd := &cobra.Command{
		Use:     "format-bytes SIZE",
		Short:   "Render a byte count in human units",
		Example: "  utilkit format-bytes 82854982\n  utilkit format-bytes \"42 MB\" --iec",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				if n, err = format.ParseBytes(args[0]); err != nil {
					return apperrors.InvalidInput("size", fmt.Sprintf("%q is neither a byte count nor a size", args[0]))
				}
			}
			if iec {
				printLine(cmd, format.FormatIBytes(n))
			} else {
				printLine(cmd, format.FormatBytes(n))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&iec, "iec", false, "use binary (KiB, MiB) units")
	return cmd
}
