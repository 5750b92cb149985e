package main

import (
	"os"

	"github.com/getamis/sirius/log"
	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/zkgarble/freexor-garble/bristol"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect CIRCUIT.bristol [CIRCUIT.bristol...]",
	Short: "Print gate/wire counts for one or more Bristol-fashion circuits",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tab := tabulate.New(tabulate.Github)
		tab.Header("File")
		tab.Header("XOR").SetAlign(tabulate.MR)
		tab.Header("AND").SetAlign(tabulate.MR)
		tab.Header("INV").SetAlign(tabulate.MR)
		tab.Header("Gates").SetAlign(tabulate.MR)
		tab.Header("Wires").SetAlign(tabulate.MR)

		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				log.Warn("Cannot open circuit file", "path", path, "err", err)
				return err
			}
			c, err := bristol.Parse(f)
			f.Close()
			if err != nil {
				log.Warn("Cannot parse circuit", "path", path, "err", err)
				return err
			}

			row := tab.Row()
			row.Column(path)
			c.TabulateRow(row)
		}

		tab.Print(os.Stdout)
		return nil
	},
}
