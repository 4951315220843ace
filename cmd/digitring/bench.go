package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/npillmayer/digitring"
	"github.com/spf13/cobra"
)

// =============================================================================
// BENCH COMMAND - fill a buffer with random digits and time one ring sum
// =============================================================================

func newBenchCmd() *cobra.Command {
	var size int
	var seed uint64
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time one ring sum over a buffer of random digits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("invalid buffer size %d", size)
			}
			digits := randomDigits(size, seed)
			start := time.Now()
			sum, err := digitring.SumMatching(digits)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}
			tracer().Infof("summed %d random digits in %v", size, elapsed)
			out := cmd.OutOrStdout()
			report(out, "digits", size)
			report(out, "sum", sum)
			report(out, "elapsed", elapsed)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 10_000_000, "number of random digits")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random digit generator")
	return cmd
}

// randomDigits fills a buffer with n pseudo-random decimal digits. Equal seeds
// produce equal buffers.
func randomDigits(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + r.IntN(10))
	}
	return buf
}
