package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"personal/discord_wire/src/discord"
	"personal/discord_wire/src/optional"
)

// InspectResult reports how a payload decoded.
type InspectResult struct {
	Kind        string          `json:"kind"`
	Specified   []string        `json:"specified"`
	Unspecified []string        `json:"unspecified"`
	Encoded     json.RawMessage `json:"encoded"`
}

type validator interface {
	Validate() error
}

func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <kind> [file]",
		Short: "Decode a payload and list its specified optional fields",
		Long: fmt.Sprintf(`Decode a vendor JSON payload of the given kind from a file, or stdin when
no file is given, list which optional fields it specifies and print it
re-encoded. Fields the payload left out stay out of the re-encoded body.

Kinds: %s`, strings.Join(discord.Kinds(), ", ")),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("could not open payload: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runInspect(rootOpts, args[0], in, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, kind string, in io.Reader, out io.Writer) error {
	logger := opts.logger().With(zap.String("kind", kind))

	payload, err := discord.DecodeKind(kind, in)
	if err != nil {
		logger.Error("could not decode payload", zap.Error(err))
		return err
	}

	if p, ok := payload.(discord.Packet); ok {
		data, known, err := p.Data()
		if err != nil {
			logger.Error("could not decode dispatch data", zap.Error(err))
			return err
		}
		if known {
			logger.Debug("unwrapped dispatch packet", zap.String("event", *p.T))
			payload = data
		}
	}

	if v, ok := payload.(validator); ok {
		if err := v.Validate(); err != nil {
			logger.Warn("payload failed validation", zap.Error(err))
			return err
		}
	}

	encoded, err := discord.Encode(payload)
	if err != nil {
		return err
	}

	result := InspectResult{
		Kind:        kind,
		Specified:   nonNil(optional.SpecifiedFields(payload)),
		Unspecified: nonNil(optional.UnspecifiedFields(payload)),
		Encoded:     encoded,
	}
	logger.Info("decoded payload",
		zap.Strings("specified", result.Specified),
		zap.Int("unspecified", len(result.Unspecified)))

	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "kind:        %s\n", result.Kind)
	fmt.Fprintf(out, "specified:   %s\n", strings.Join(result.Specified, ", "))
	fmt.Fprintf(out, "unspecified: %s\n", strings.Join(result.Unspecified, ", "))
	fmt.Fprintf(out, "encoded:     %s\n", result.Encoded)
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
