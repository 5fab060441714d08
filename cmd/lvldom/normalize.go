package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldom/adjlist"
)

var normalizeOut string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <graph.txt>",
	Short: "Drop isolated vertices and rewrite the file in sorted form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		out := normalizeOut
		if out == "" {
			out = adjlist.OutputPath(in)
		}

		g, err := adjlist.Normalize(in, out)
		if err != nil {
			return err
		}

		log.Info().
			Str("input", in).
			Str("output", out).
			Int("vertices", g.VertexCount()).
			Int("edges", g.EdgeCount()).
			Msg("normalized")
		return nil
	},
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOut, "output", "o", "", "Output path (default: <input>_normalized.<ext>)")
	rootCmd.AddCommand(normalizeCmd)
}
