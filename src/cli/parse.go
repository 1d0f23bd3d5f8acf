package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"personal/discord_wire/src/numeric"
	"personal/discord_wire/src/optional"
)

// ParseResult describes one parsed argument.
type ParseResult struct {
	Input   string                  `json:"input"`
	Kind    string                  `json:"kind"`
	Text    string                  `json:"text"`
	Int     int64                   `json:"int"`
	Float   float64                 `json:"float"`
	Int8    int8                    `json:"int8"`
	Uint8   uint8                   `json:"uint8"`
	Int16   int16                   `json:"int16"`
	Uint16  uint16                  `json:"uint16"`
	Int32   int32                   `json:"int32"`
	Uint32  uint32                  `json:"uint32"`
	Int64   int64                   `json:"int64"`
	Uint64  uint64                  `json:"uint64"`
	Float32 string                  `json:"float32"` // may be ±Inf
	Compare optional.Optional[int]  `json:"compare,omitzero"`
	Equal   optional.Optional[bool] `json:"equal,omitzero"`
}

func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	var against string

	cmd := &cobra.Command{
		Use:   "parse [--] <number>...",
		Short: "Dual-parse numbers and show every conversion",
		Long: `Parse each argument as both an integer and a float, report which
representation won, and print the saturating conversion to each
primitive width. With --compare, also compare each value against another
number using the --allow-cast policy.

Negative numbers look like flags; put them after "--".`,
		Example: `  discord-wire parse 42 300.5
  discord-wire parse --format json -- -5 -5.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var other optional.Optional[numeric.Number]
			if against != "" {
				n, err := numeric.Parse(against)
				if err != nil {
					return fmt.Errorf("invalid --compare value: %w", err)
				}
				other = optional.Some(n)
			}

			results := make([]ParseResult, 0, len(args))
			for _, arg := range args {
				n, err := numeric.Parse(arg)
				if err != nil {
					return err
				}
				rootOpts.logger().Debug("parsed number",
					zap.String("input", arg),
					zap.Stringer("kind", n.Kind()))
				results = append(results, describe(arg, n, other, rootOpts.AllowCast))
			}

			return writeParseResults(cmd.OutOrStdout(), rootOpts.Format, results)
		},
	}

	cmd.Flags().StringVar(&against, "compare", "", "number to compare each argument against")

	return cmd
}

func describe(input string, n numeric.Number, other optional.Optional[numeric.Number], allowCast bool) ParseResult {
	return ParseResult{
		Input:   input,
		Kind:    n.Kind().String(),
		Text:    n.String(),
		Int:     n.Int(),
		Float:   n.Float(),
		Int8:    n.Int8(),
		Uint8:   n.Uint8(),
		Int16:   n.Int16(),
		Uint16:  n.Uint16(),
		Int32:   n.Int32(),
		Uint32:  n.Uint32(),
		Int64:   n.Int64(),
		Uint64:  n.Uint64(),
		Float32: strconv.FormatFloat(float64(n.Float32()), 'g', -1, 32),
		Compare: optional.Map(other, func(o numeric.Number) int { return n.CompareCast(o, allowCast) }),
		Equal:   optional.Map(other, func(o numeric.Number) bool { return n.EqualCast(o, allowCast) }),
	}
}

func writeParseResults(w io.Writer, format string, results []ParseResult) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tKIND\tINT\tFLOAT\tINT8\tUINT8\tINT32\tUINT32\tFLOAT32\tCOMPARE")
	for _, r := range results {
		compare := "-"
		if c, ok := r.Compare.Get(); ok {
			compare = fmt.Sprint(c)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.Input, r.Kind, r.Int, r.Float, r.Int8, r.Uint8, r.Int32, r.Uint32, r.Float32, compare)
	}
	return tw.Flush()
}

func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
