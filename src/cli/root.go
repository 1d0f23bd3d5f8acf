package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"personal/discord_wire/src/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format    string // "json" | "text"
	AllowCast bool

	Logger *zap.Logger
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. Flag defaults come from cfg.
func NewRootCommand(cfg config.Config, logger *zap.Logger) *cobra.Command {
	opts := &RootOptions{Logger: logger}

	cmd := &cobra.Command{
		Use:   "discord-wire",
		Short: "Inspect vendor wire values",
		Long:  "Parse numbers the way payload decoding does and check which optional fields a payload specifies.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.AllowCast, "allow-cast", cfg.AllowCast, "allow comparisons across integer and float values")

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))

	return cmd
}
