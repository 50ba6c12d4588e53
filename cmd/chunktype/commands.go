package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/davejbax/go-png"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"io"
	"strconv"
)

const cmdName = "chunktype"

var errInvalidInput = errors.New("one or more inputs could not be decoded")

type app struct {
	out    io.Writer
	logger zerolog.Logger

	logLevel string
	strict   bool
}

func newRootCommand(out io.Writer, logger zerolog.Logger) *cobra.Command {
	a := &app{out: out, logger: logger}

	rootCmd := &cobra.Command{
		Use:           cmdName,
		Short:         "Inspect PNG chunk type codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
			}

			a.logger = a.logger.Level(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", zerolog.InfoLevel.String(), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "stop at the first input that cannot be decoded")

	rootCmd.SetOut(out)
	rootCmd.AddCommand(
		a.inspectCommand(),
		a.knownCommand(),
		a.headerCommand(),
	)

	return rootCmd
}

func (a *app) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect TYPE...",
		Short: "Print the properties encoded in each chunk type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var chunkTypes []png.ChunkType
			failed := 0

			for _, arg := range args {
				c, err := png.ParseChunkType(arg)
				if err != nil {
					if a.strict {
						return fmt.Errorf("could not parse chunk type %q: %w", arg, err)
					}

					a.logger.Warn().Err(err).Str("input", arg).Msg("skipping invalid chunk type")
					failed++
					continue
				}

				a.logger.Debug().Str("type", c.String()).Msg("parsed chunk type")
				chunkTypes = append(chunkTypes, c)
			}

			a.renderChunkTypes(chunkTypes)

			if failed > 0 {
				return fmt.Errorf("%d of %d chunk types: %w", failed, len(args), errInvalidInput)
			}

			return nil
		},
	}
}

func (a *app) knownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "known",
		Short: "List the chunk types defined by the PNG standard",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.renderChunkTypes(png.StandardChunkTypes())
			return nil
		},
	}
}

func (a *app) headerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "header HEX...",
		Short: "Decode hex-encoded 8-byte chunk headers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(a.out)
			table.SetHeader([]string{"Length", "Type", "Critical"})

			failed := 0
			for _, arg := range args {
				header, err := decodeHeader(arg)
				if err != nil {
					if a.strict {
						return fmt.Errorf("could not decode chunk header %q: %w", arg, err)
					}

					a.logger.Warn().Err(err).Str("input", arg).Msg("skipping invalid chunk header")
					failed++
					continue
				}

				table.Append([]string{
					strconv.FormatUint(uint64(header.Length), 10),
					header.Type.String(),
					strconv.FormatBool(header.Type.IsCritical()),
				})
			}

			table.Render()

			if failed > 0 {
				return fmt.Errorf("%d of %d chunk headers: %w", failed, len(args), errInvalidInput)
			}

			return nil
		},
	}
}

func decodeHeader(input string) (png.ChunkHeader, error) {
	raw, err := hex.DecodeString(input)
	if err != nil {
		return png.ChunkHeader{}, fmt.Errorf("could not decode hex: %w", err)
	}

	if len(raw) != png.ChunkHeaderSize {
		return png.ChunkHeader{}, fmt.Errorf("expected %d bytes, got %d", png.ChunkHeaderSize, len(raw))
	}

	return png.ReadChunkHeader(bytes.NewReader(raw))
}

func (a *app) renderChunkTypes(chunkTypes []png.ChunkType) {
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Type", "Bytes", "Critical", "Public", "Reserved Valid", "Safe To Copy"})

	for _, c := range chunkTypes {
		b := c.Bytes()
		table.Append([]string{
			c.String(),
			hex.EncodeToString(b[:]),
			strconv.FormatBool(c.IsCritical()),
			strconv.FormatBool(c.IsPublic()),
			strconv.FormatBool(c.IsReservedBitValid()),
			strconv.FormatBool(c.IsSafeToCopy()),
		})
	}

	table.Render()
}
