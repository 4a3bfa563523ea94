// Command shapley estimates how much each worker contributes to a shared
// result, given each worker's standalone value.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/emergentai/landing/internal/shapley"
)

var defaultWeights = []float64{0.05, 0.1, 0.15, 0.3, 0.4}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type result struct {
	Worker  int     `json:"worker"`
	Weight  float64 `json:"weight"`
	Shapley float64 `json:"shapley"`
}

func newRootCmd() *cobra.Command {
	var (
		samples int
		seed    uint64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "shapley [weight...]",
		Short: "Estimate each worker's Shapley value",
		Long: `Estimate each worker's Shapley value by sampling random join orders.

Each argument is one worker's weight; a coalition is worth the sum of its
members' weights. Without arguments five sample workers are used.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := parseWeights(args)
			if err != nil {
				return err
			}
			if output != "table" && output != "json" {
				return fmt.Errorf("unknown output format %q (table, json)", output)
			}
			if seed == 0 {
				seed = rand.Uint64()
			}

			rng := rand.New(rand.NewPCG(seed, seed))
			values, err := shapley.Estimate(len(weights), samples, shapley.Additive(weights), rng)
			if err != nil {
				return err
			}

			results := make([]result, len(weights))
			for i := range weights {
				results[i] = result{Worker: i, Weight: weights[i], Shapley: values[i]}
			}
			return writeResults(cmd.OutOrStdout(), output, results)
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 1000, "number of sampled permutations")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json)")
	return cmd
}

func parseWeights(args []string) ([]float64, error) {
	if len(args) == 0 {
		return append([]float64(nil), defaultWeights...), nil
	}

	weights := make([]float64, len(args))
	for i, arg := range args {
		w, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q for worker %d: %w", arg, i, err)
		}
		weights[i] = w
	}
	return weights, nil
}

func writeResults(w io.Writer, output string, results []result) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Worker", "Weight", "Shapley")
	for _, r := range results {
		if err := table.Append(
			strconv.Itoa(r.Worker),
			strconv.FormatFloat(r.Weight, 'f', -1, 64),
			strconv.FormatFloat(r.Shapley, 'f', 4, 64),
		); err != nil {
			return err
		}
	}
	return table.Render()
}
