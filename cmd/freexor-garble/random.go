package main

import (
	"math/rand"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkgarble/freexor-garble/bristol"
	"github.com/zkgarble/freexor-garble/randomcircuit"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random Bristol-fashion circuit for benchmarking",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := randomcircuit.Options{
			InputWires: viper.GetInt("inputs"),
			GateCount:  viper.GetInt("gates"),
			XORRatio:   viper.GetFloat64("xor-ratio"),
		}

		seed := viper.GetInt64("rand-seed")
		rng := rand.New(rand.NewSource(seed))

		c, err := randomcircuit.Generate(opts, rng)
		if err != nil {
			log.Warn("Random circuit generation failed", "err", err)
			return err
		}
		log.Debug("Generated circuit", "summary", c.String())

		outPath := viper.GetString("out")
		if outPath == "" {
			return bristol.Write(os.Stdout, c)
		}
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		return bristol.Write(out, c)
	},
}

func init() {
	randomCmd.Flags().Int("inputs", 16, "number of primary input wires")
	randomCmd.Flags().Int("gates", 100, "number of gates to generate")
	randomCmd.Flags().Float64("xor-ratio", 0.5, "probability a generated gate is XOR rather than AND")
	randomCmd.Flags().Int64("rand-seed", 1, "math/rand source seed (not a garbling seed)")
	randomCmd.Flags().String("out", "", "circuit output file (stdout if omitted)")
}
