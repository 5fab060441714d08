package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvldom/adjlist"
	"github.com/katalvlaran/lvldom/core"
	"github.com/katalvlaran/lvldom/edgelist"
	"github.com/katalvlaran/lvldom/trd"
)

var (
	solveFormat string
	solveTrials int
	solveParams string
	solveCSV    string
)

var solveCmd = &cobra.Command{
	Use:   "solve <graph.txt>",
	Short: "Search for a minimum-weight total Roman dominating function",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		g, err := loadGraph(path, solveFormat)
		if err != nil {
			return err
		}
		if removed := g.RemoveIsolated(); len(removed) > 0 {
			log.Warn().Int("count", len(removed)).Msg("dropped isolated vertices")
		}

		opts := trd.DefaultOptions()
		if solveParams != "" {
			if opts, err = loadParams(solveParams); err != nil {
				return err
			}
		}

		runID := uuid.NewString()
		log.Info().
			Str("run_id", runID).
			Str("graph", path).
			Int("vertices", g.VertexCount()).
			Int("edges", g.EdgeCount()).
			Int("trials", solveTrials).
			Msg("solving")

		trials, summary, err := trd.RunTrials(cmd.Context(), g, solveTrials, opts)
		if err != nil {
			return err
		}

		if solveCSV != "" {
			if err = appendResults(solveCSV, filepath.Base(path), g, trials); err != nil {
				return fmt.Errorf("cannot write results: %w", err)
			}
			log.Info().Str("csv", solveCSV).Msg("results written")
		}

		log.Info().
			Str("run_id", runID).
			Int("best_fitness", summary.BestFitness).
			Float64("mean_fitness", summary.MeanFitness).
			Float64("stddev_fitness", summary.StdDevFitness).
			Dur("mean_elapsed", summary.MeanElapsed).
			Msg("done")
		return nil
	},
}

func loadGraph(path, format string) (*core.Graph, error) {
	switch format {
	case "adj":
		return adjlist.Load(path)
	case "edge":
		return edgelist.Load(path)
	default:
		return nil, fmt.Errorf("unknown graph format %q (want adj or edge)", format)
	}
}

func loadParams(path string) (trd.Options, error) {
	opts := trd.DefaultOptions()
	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("cannot read params: %w", err)
	}
	if err = yaml.Unmarshal(raw, &opts); err != nil {
		return opts, fmt.Errorf("cannot parse params: %w", err)
	}
	return opts, nil
}

// appendResults appends one CSV row per trial, writing the header first
// when the file is empty.
func appendResults(path, name string, g *core.Graph, trials []trd.Trial) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		header := []string{"graph_name", "graph_order", "graph_size", "fitness_value", "elapsed_time(microsecond)"}
		if err = w.Write(header); err != nil {
			return err
		}
	}

	order := strconv.Itoa(g.VertexCount())
	size := strconv.Itoa(g.EdgeCount())
	for _, tr := range trials {
		row := []string{
			name,
			order,
			size,
			strconv.Itoa(tr.Fitness),
			strconv.FormatInt(tr.Elapsed.Microseconds(), 10),
		}
		if err = w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func init() {
	solveCmd.Flags().StringVar(&solveFormat, "format", "adj", "Input format: adj (adjacency list) or edge (edge list)")
	solveCmd.Flags().IntVar(&solveTrials, "trials", 1, "Number of independent runs")
	solveCmd.Flags().StringVar(&solveParams, "params", "", "YAML file with search parameters")
	solveCmd.Flags().StringVar(&solveCSV, "csv", "", "Append per-trial results to this CSV file")
	rootCmd.AddCommand(solveCmd)
}
