package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldom/adjlist"
	"github.com/katalvlaran/lvldom/gen"
)

var (
	generateN    int
	generateP    float64
	generateSeed int64
	generateOut  string
)

var generateCmd = &cobra.Command{
	Use:   "generate -n N -p P -o out.txt",
	Short: "Generate a random connected-ish graph and write it as an adjacency list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gen.Random(generateN, generateP, gen.WithSeed(generateSeed))
		if err != nil {
			return err
		}

		if err = adjlist.Save(g, generateOut); err != nil {
			return err
		}

		log.Info().
			Str("output", generateOut).
			Int("vertices", g.VertexCount()).
			Int("edges", g.EdgeCount()).
			Float64("probability", generateP).
			Int64("seed", generateSeed).
			Msg("generated")
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateN, "vertices", "n", 0, "Number of vertices (min 2)")
	generateCmd.Flags().Float64VarP(&generateP, "probability", "p", 0, "Edge probability in [0,1]")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "RNG seed (0 picks the fixed default)")
	generateCmd.Flags().StringVarP(&generateOut, "output", "o", "", "Output path")
	_ = generateCmd.MarkFlagRequired("vertices")
	_ = generateCmd.MarkFlagRequired("probability")
	_ = generateCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(generateCmd)
}
