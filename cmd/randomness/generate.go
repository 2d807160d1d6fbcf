package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

// Values are written to a file in chunks of this size, so the progress bar
// advances. Generation itself is a single batch.
const outputChunk = 4096

var (
	generateFlags  schemeFlags
	generateCount  int
	generateSeed   uint64
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate [kind]",
	Short: "Generate random values",
	Long: `Generate values from a scheme of the given kind, a saved scheme or a UDS
descriptor. Values are printed one per line.

Examples:
  randomness generate integer --set minValue=1 --set maxValue=6 --count 5
  randomness generate string --set minLength=8 --set maxLength=8 --array-min 2 --array-max 4
  randomness generate --descriptor 'SKU-%Int[minValue=1,maxValue=9999]-%Str[minLength=2,maxLength=2,symbols=XYZ]'
  randomness generate --scheme ids --count 100000 --output ids.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateFlags.register(generateCmd, true)
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 10, "number of values")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "seed for reproducible output")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write values to this file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sch, err := generateFlags.build(cmd, args)
	if err != nil {
		return err
	}
	if err := scheme.Validate(sch); err != nil {
		return err
	}

	count := cfg.Count
	if cmd.Flags().Changed("count") {
		count = generateCount
	}
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}

	rng := newRand(cmd)
	g := scheme.Decorate(sch, rng)
	logger.Debug("generating",
		zap.String("kind", string(sch.Kind())),
		zap.Stringer("id", sch.ID()),
		zap.Int("count", count))

	if generateOutput == "" {
		values, err := randomness.Batch(g, count)
		if err != nil {
			return err
		}
		_, err = writeValues(cmd.OutOrStdout(), values)
		return err
	}
	return generateToFile(g, count, generateOutput, cmd.ErrOrStderr())
}

func newRand(cmd *cobra.Command) *rand.Rand {
	switch {
	case cmd.Flags().Changed("seed"):
		return randomness.NewRand(generateSeed)
	case cfg.Seed != nil:
		return randomness.NewRand(*cfg.Seed)
	default:
		return randomness.NewTimeRand()
	}
}

func generateToFile(g randomness.Generator, count int, path string, status io.Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	values, err := randomness.Batch(g, count)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(count,
		progressbar.OptionSetWriter(status),
		progressbar.OptionSetDescription("writing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var written int64
	for start := 0; start < len(values); start += outputChunk {
		chunk := values[start:min(start+outputChunk, len(values))]
		w, err := writeValues(f, chunk)
		written += w
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		_ = bar.Add(len(chunk))
	}
	_ = bar.Finish()

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	fmt.Fprintf(status, "Wrote %s values (%s) to %s\n", humanize.Comma(int64(count)), humanize.Bytes(uint64(written)), path)
	return nil
}

func writeValues(w io.Writer, values []string) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, v := range values {
		m, err := bw.WriteString(v)
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}
