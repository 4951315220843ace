package main

import (
	"fmt"

	"github.com/npillmayer/digitring"
	"github.com/npillmayer/digitring/textfile"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var traceLevel string
	cmd := &cobra.Command{
		Use:   "digitring",
		Short: "Sum digits matching their circular successor",
		Long: `digitring reads a sequence of decimal digits and sums up every digit
which equals its successor. The last digit is followed by the first one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(traceLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level (Error, Info, Debug)")
	cmd.AddCommand(newSumCmd(), newBenchCmd())
	return cmd
}

// =============================================================================
// SUM COMMAND
// =============================================================================

type sumOptions struct {
	start    uint64
	end      int64
	fragSize int64
}

func newSumCmd() *cobra.Command {
	opts := &sumOptions{}
	cmd := &cobra.Command{
		Use:   "sum FILE",
		Short: "Sum matching digits of a digit file",
		Long: `Reads a file of decimal digits, excluding trailing whitespace, and prints
the sum of all digits equal to their circular successor.

Without --start or --end the file is streamed in fragments. With a range,
the file is loaded and the ring is formed from digits [start, end) only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranged := cmd.Flags().Changed("start") || cmd.Flags().Changed("end")
			return runSum(cmd, args[0], ranged, opts)
		},
	}
	cmd.Flags().Uint64Var(&opts.start, "start", 0, "start of range (inclusive)")
	cmd.Flags().Int64Var(&opts.end, "end", -1, "end of range (exclusive); negative for end of sequence")
	cmd.Flags().Int64Var(&opts.fragSize, "frag-size", 0, "fragment size for reading; 0 for default")
	return cmd
}

func runSum(cmd *cobra.Command, path string, ranged bool, opts *sumOptions) error {
	var sum, n uint64
	if ranged {
		digits, err := textfile.Load(path, opts.fragSize)
		if err != nil {
			return fmt.Errorf("cannot load %s: %w", path, err)
		}
		end := uint64(len(digits))
		if opts.end >= 0 {
			end = uint64(opts.end)
		}
		tracer().Infof("forming ring from range [%d, %d) of %d digits", opts.start, end, len(digits))
		if sum, err = digitring.SumMatchingRange(digits, opts.start, end); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		n = end - opts.start
	} else {
		var fragments int
		progress := func(pos int64, frag []byte) {
			fragments++
			tracer().Debugf("fragment #%d at %d, %d bytes", fragments, pos, len(frag))
		}
		var err error
		if sum, err = textfile.Sum(path, opts.fragSize, progress); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		tracer().Infof("streamed %d fragments of %s", fragments, path)
	}
	out := cmd.OutOrStdout()
	if ranged {
		report(out, "digits", n)
	}
	report(out, "sum", sum)
	return nil
}
