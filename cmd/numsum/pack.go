package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/numsum/blob"
	"github.com/arloliu/numsum/stats"
)

func newPackCmd(a *app) *cobra.Command {
	var (
		name        string
		encoding    string
		compression string
		bigEndian   bool
	)

	cmd := &cobra.Command{
		Use:   "pack in out",
		Short: "Encode a sample into a sample blob",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("encoding") {
				a.cfg.Blob.Encoding = encoding
			}
			if cmd.Flags().Changed("compression") {
				a.cfg.Blob.Compression = compression
			}
			if cmd.Flags().Changed("big-endian") {
				a.cfg.Blob.BigEndian = bigEndian
			}

			opts, err := encoderOptions(a)
			if err != nil {
				return err
			}

			values, derived, err := loadValues(cmd, args[:1])
			if err != nil {
				return err
			}
			if name == "" {
				name = derived
			}

			data, err := blob.EncodeSample(name, values, opts...)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, args[1], data); err != nil {
				return err
			}

			a.logger.Info("sample packed",
				"name", name, "count", len(values), "size", humanize.Bytes(uint64(len(data))),
				"bytes_per_value", bytesPerValue(len(data), len(values)),
				"encoding", a.cfg.Blob.Encoding, "compression", a.cfg.Blob.Compression)

			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "sample name (default: input file name)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "value encoding: raw or gorilla (default from config)")
	cmd.Flags().StringVar(&compression, "compression", "", "payload compression: none, zstd, s2, lz4 or snappy (default from config)")
	cmd.Flags().BoolVar(&bigEndian, "big-endian", false, "write the blob big-endian")

	return cmd
}

func bytesPerValue(size, count int) string {
	if count == 0 {
		return "-"
	}

	return humanize.FtoaWithDigits(float64(size)/float64(count), 2)
}

func encoderOptions(a *app) ([]blob.SampleEncoderOption, error) {
	enc, err := a.cfg.ValueEncoding()
	if err != nil {
		return nil, err
	}
	comp, err := a.cfg.Compression()
	if err != nil {
		return nil, err
	}

	opts := []blob.SampleEncoderOption{blob.WithValueEncoding(enc), blob.WithCompression(comp)}
	if a.cfg.Blob.BigEndian {
		opts = append(opts, blob.WithBigEndian())
	}

	return opts, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}

func newUnpackCmd(a *app) *cobra.Command {
	var describe bool

	cmd := &cobra.Command{
		Use:   "unpack in",
		Short: "Decode a sample blob and print its values, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, source, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			data, err := io.ReadAll(r)
			r.Close()
			if err != nil {
				return err
			}

			sample, err := blob.DecodeSample(data)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			a.logger.Debug("sample unpacked",
				"name", sample.Name(), "id", sample.ID(), "count", sample.Len(),
				"size", humanize.Bytes(uint64(len(data))),
				"encoding", sample.ValueEncoding(), "compression", sample.Compression(),
				"big_endian", sample.IsBigEndian())

			if describe {
				analyzer, err := stats.NewAnalyzer(sample.Values(), stats.WithName(sample.Name()))
				if err != nil {
					return err
				}

				return writeSummary(cmd, analyzer.Name(), analyzer.Summary())
			}

			out := cmd.OutOrStdout()
			for _, v := range sample.All() {
				fmt.Fprintln(out, formatFloat(v))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&describe, "describe", false, "print the summary instead of the values")

	return cmd
}
