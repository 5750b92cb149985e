package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkgarble/freexor-garble/archive"
	"github.com/zkgarble/freexor-garble/bristol"
	"github.com/zkgarble/freexor-garble/garble"
	"github.com/zkgarble/freexor-garble/prg"
)

var garbleCmd = &cobra.Command{
	Use:   "garble --circuit FILE --seed FILE",
	Short: "Garble a Bristol-fashion circuit and write its commitment",
	RunE: func(cmd *cobra.Command, args []string) error {
		circuitPath := viper.GetString("circuit")
		if circuitPath == "" {
			return fmt.Errorf("garble: --circuit is required")
		}

		f, err := os.Open(circuitPath)
		if err != nil {
			log.Warn("Cannot open circuit file", "path", circuitPath, "err", err)
			return err
		}
		defer f.Close()

		c, err := bristol.Parse(f)
		if err != nil {
			log.Warn("Cannot parse circuit", "path", circuitPath, "err", err)
			return err
		}
		log.Debug("Parsed circuit", "summary", c.String())

		seed, err := resolveSeed(viper.GetString("seed"))
		if err != nil {
			return err
		}

		inputs := prg.Derive(seed, c.InputWireCount(), c.InnerWireCount())
		tables, inputPairs, err := garble.Garble(c, inputs)
		if err != nil {
			log.Warn("Garbling failed", "err", err)
			return err
		}

		commitment := garble.BuildCommitment(c, inputPairs, tables)
		log.Info("Garbled circuit",
			"andTables", len(tables.AndTables),
			"notTables", len(tables.NotTables),
			"circuitHash", hex.EncodeToString(commitment.CircuitHash[:]))

		outPath := viper.GetString("out")
		if outPath == "" {
			return archive.Marshal(os.Stdout, commitment)
		}
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		return archive.Marshal(out, commitment)
	},
}

func init() {
	garbleCmd.Flags().String("circuit", "", "Bristol-fashion circuit file")
	garbleCmd.Flags().String("seed", "", "seed file: exactly 32 raw bytes (config seed, else random, if omitted)")
	garbleCmd.Flags().String("out", "", "commitment output file (stdout if omitted)")
}

// seedIOError reports a seed file that is missing, unreadable, or
// shorter than prg.SeedSize bytes, matching spec.md §7's IOError for
// the seed file's 32-byte requirement.
type seedIOError struct {
	Path string
	Err  error
}

func (e *seedIOError) Error() string {
	return fmt.Sprintf("garble: seed file %q: %v", e.Path, e.Err)
}

func (e *seedIOError) Unwrap() error { return e.Err }

// resolveSeed reads exactly prg.SeedSize raw bytes from the seed file
// at path. A file shorter than prg.SeedSize bytes is a fatal
// seedIOError. An empty path falls back to the config file's
// hex-encoded seed and finally to crypto/rand when neither is set.
func resolveSeed(path string) ([prg.SeedSize]byte, error) {
	var seed [prg.SeedSize]byte

	if path == "" {
		if appConfig.SeedHex != "" {
			decoded, err := hex.DecodeString(appConfig.SeedHex)
			if err != nil {
				return seed, fmt.Errorf("garble: invalid config seed hex: %w", err)
			}
			if len(decoded) != prg.SeedSize {
				return seed, fmt.Errorf("garble: config seed must be %d bytes, got %d", prg.SeedSize, len(decoded))
			}
			copy(seed[:], decoded)
			return seed, nil
		}
		if _, err := rand.Read(seed[:]); err != nil {
			return seed, fmt.Errorf("garble: cannot draw a random seed: %w", err)
		}
		return seed, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return seed, &seedIOError{Path: path, Err: err}
	}
	defer f.Close()

	if _, err := io.ReadFull(f, seed[:]); err != nil {
		return seed, &seedIOError{Path: path, Err: fmt.Errorf("shorter than %d bytes: %w", prg.SeedSize, err)}
	}

	// Trailing bytes beyond the first 32 are ignored; only a short read
	// is fatal.
	return seed, nil
}
