// Command freexor-garble is the CLI front end for the Free-XOR garbling
// engine: it garbles Bristol-fashion circuits, generates random
// circuits for benchmarking, and inspects circuit files' gate/wire
// counts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkgarble/freexor-garble/internal/config"
)

var appConfig = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "freexor-garble",
	Short: "Garble Bristol-fashion circuits with the Free-XOR optimization",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}
		*appConfig = *cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path")

	rootCmd.AddCommand(garbleCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
