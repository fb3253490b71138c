package cli

import (
	"utilkit/pkg/random"
	"utilkit/pkg/urlutil"

	"github.com/spf13/cobra"
)

func newRandomStringCommand() *cobra.Command {
	var (
		length  int
		charset string
	)

	cmd := &cobra.Command{
		Use:   "random-string",
		Short: "Generate a random string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := random.RandomString(length, charset)
			if err != nil {
				return err
			}
			printLine(cmd, s)
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 16, "number of characters")
	cmd.Flags().StringVar(&charset, "charset", "", "characters to draw from (default alphanumeric)")
	return cmd
}

func newUUIDCommand() *cobra.Command {
	var sortable bool

	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate a random identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sortable {
				printLine(cmd, random.SortableID())
				return nil
			}
			printLine(cmd, random.UUID())
			return nil
		},
	}
	cmd.Flags().BoolVar(&sortable, "sortable", false, "print a 20 character time-sortable id instead of a UUID")
	return cmd
}

func newBaseURLCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "base-url",
		Short: "Print the server URL built from BASE_URL and PORT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.log().Debug("Resolved base URL", "base_url", a.cfg.BaseURL, "port", a.cfg.Port)
			printLine(cmd, urlutil.BaseURL())
			return nil
		},
	}
}

func newCleanURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "clean-url URL",
		Short:   "Normalize a URL and drop tracking parameters",
		Example: `  utilkit clean-url "WWW.Example.com/path/?utm_source=x"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, urlutil.CleanURL(args[0]))
			return nil
		},
	}
}
