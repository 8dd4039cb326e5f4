// Command benchshift measures the relocation strategies against each other
// and certifies them against the reference relocator.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	algoshift "github.com/cwbudde/algo-fftshift"
)

var benchStrategies = []algoshift.Strategy{
	algoshift.StrategyReference,
	algoshift.StrategyWhole,
	algoshift.StrategyRows,
	algoshift.StrategyBlocks,
	algoshift.StrategyPow2,
	algoshift.StrategyChunked,
}

type shape struct {
	rows, cols int
}

func (s shape) String() string {
	return fmt.Sprintf("%dx%d", s.rows, s.cols)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "benchshift",
		Short:         "Benchmark and verify the fft-shift relocation strategies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newBenchCmd(), newVerifyCmd())

	return root
}

func newBenchCmd() *cobra.Command {
	var (
		shapeList  string
		iters      int
		warmup     int
		seed       int64
		wisdomFile string
		emit       bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every strategy per shape and report ns/op",
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := parseShapes(shapeList)
			if err != nil {
				return err
			}

			rnd := rand.New(rand.NewSource(seed))

			fmt.Printf("iters=%d warmup=%d\n", iters, warmup)
			fmt.Printf("%12s  %12s  %14s\n", "shape", "strategy", "ns/op")

			wisdom := algoshift.NewWisdom()

			for _, sh := range shapes {
				results := benchmarkShape(rnd, sh, iters, warmup)

				sort.Slice(results, func(i, j int) bool {
					return results[i].nsPerOp < results[j].nsPerOp
				})

				for _, res := range results {
					fmt.Printf("%12s  %12s  %14.1f\n", sh, res.strategy, res.nsPerOp)
				}

				if len(results) == 0 {
					continue
				}

				best := results[0]
				wisdom.Record(sh.rows, sh.cols, best.strategy)

				if emit {
					fmt.Printf("algoshift.RecordBenchmarkDecision(%d, %d, algoshift.Strategy%s)\n",
						sh.rows, sh.cols, exportName(best.strategy))
				}
			}

			if wisdomFile != "" {
				if err := algoshift.ExportWisdomTo(wisdomFile, wisdom); err != nil {
					return err
				}

				fmt.Printf("\nWisdom exported to: %s\n", wisdomFile)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&shapeList, "shapes", "256x256,1024x1024,512x2048", "comma-separated rowsXcols shapes")
	cmd.Flags().IntVar(&iters, "iters", 50, "benchmark iterations")
	cmd.Flags().IntVar(&warmup, "warmup", 5, "warmup iterations")
	cmd.Flags().Int64Var(&seed, "seed", 1, "rng seed")
	cmd.Flags().StringVar(&wisdomFile, "wisdom", "", "export best strategies to file")
	cmd.Flags().BoolVar(&emit, "emit", false, "emit RecordBenchmarkDecision lines")

	return cmd
}

type benchResult struct {
	strategy algoshift.Strategy
	nsPerOp  float64
}

func benchmarkShape(rnd *rand.Rand, sh shape, iters, warmup int) []benchResult {
	data := make([]complex64, sh.rows*sh.cols)
	for i := range data {
		data[i] = complex(rnd.Float32(), rnd.Float32())
	}

	results := make([]benchResult, 0, len(benchStrategies))

	for _, strategy := range benchStrategies {
		plan, err := algoshift.NewPlan[complex64](sh.rows, sh.cols, algoshift.WithStrategy(strategy))
		if err != nil {
			continue
		}

		buf := append([]complex64(nil), data...)

		for i := 0; i < warmup; i++ {
			if err := plan.Execute(buf); err != nil {
				break
			}
		}

		start := time.Now()

		for i := 0; i < iters; i++ {
			if err := plan.Execute(buf); err != nil {
				break
			}
		}

		elapsed := time.Since(start)

		results = append(results, benchResult{
			strategy: strategy,
			nsPerOp:  float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	return results
}

func newVerifyCmd() *cobra.Command {
	var (
		shapeList string
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Certify every strategy against the reference relocator",
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := parseShapes(shapeList)
			if err != nil {
				return err
			}

			rnd := rand.New(rand.NewSource(seed))
			failures := 0

			fmt.Printf("%12s  %12s  %14s  %8s\n", "shape", "strategy", "max diff", "verdict")

			for _, sh := range shapes {
				data := make([]complex64, sh.rows*sh.cols)
				for i := range data {
					data[i] = complex(rnd.Float32(), rnd.Float32())
				}

				want := append([]complex64(nil), data...)
				if err := algoshift.Shift(want, sh.rows, sh.cols, algoshift.WithStrategy(algoshift.StrategyReference)); err != nil {
					return err
				}

				for _, strategy := range benchStrategies[1:] {
					got := append([]complex64(nil), data...)
					if err := algoshift.Shift(got, sh.rows, sh.cols, algoshift.WithStrategy(strategy)); err != nil {
						return err
					}

					diff, ok, err := algoshift.Compare(got, want, sh.rows, sh.cols, 0)
					if err != nil {
						return err
					}

					verdict := "PASS"
					if !ok {
						verdict = "FAIL"
						failures++
					}

					fmt.Printf("%12s  %12s  %14g  %8s\n", sh, strategy, diff, verdict)
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d strategy/shape combinations disagree with the reference", failures)
			}

			fmt.Println("\nall strategies match the reference")

			return nil
		},
	}

	cmd.Flags().StringVar(&shapeList, "shapes", "64x64,127x127,128x256,255x255,1024x1024", "comma-separated rowsXcols shapes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "rng seed")

	return cmd
}

func parseShapes(list string) ([]shape, error) {
	var shapes []shape

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		dims := strings.SplitN(strings.ToLower(part), "x", 2)
		if len(dims) != 2 {
			return nil, fmt.Errorf("bad shape %q: want rowsXcols", part)
		}

		rows, err := strconv.Atoi(dims[0])
		if err != nil {
			return nil, fmt.Errorf("bad shape %q: %w", part, err)
		}

		cols, err := strconv.Atoi(dims[1])
		if err != nil {
			return nil, fmt.Errorf("bad shape %q: %w", part, err)
		}

		if rows < 1 || cols < 1 {
			return nil, fmt.Errorf("bad shape %q: dimensions must be positive", part)
		}

		shapes = append(shapes, shape{rows: rows, cols: cols})
	}

	if len(shapes) == 0 {
		return nil, fmt.Errorf("no shapes specified")
	}

	return shapes, nil
}

// exportName maps a strategy to its exported constant suffix.
func exportName(s algoshift.Strategy) string {
	name := s.String()
	if name == "pow2" {
		return "Pow2"
	}

	return strings.ToUpper(name[:1]) + name[1:]
}
