package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkgarble/freexor-garble/internal/config"
	"github.com/zkgarble/freexor-garble/prg"
)

func writeSeedFile(t *testing.T, contents []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.bin")
	require.NoError(t, os.WriteFile(path, contents, 0o600))
	return path
}

func TestResolveSeedReadsExactlyThirtyTwoBytes(t *testing.T) {
	old := appConfig
	appConfig = &config.Config{}
	defer func() { appConfig = old }()

	want := make([]byte, prg.SeedSize)
	for i := range want {
		want[i] = byte(i)
	}
	path := writeSeedFile(t, want)

	seed, err := resolveSeed(path)
	require.NoError(t, err)
	assert.Equal(t, want, seed[:])
}

func TestResolveSeedRejectsShortFile(t *testing.T) {
	old := appConfig
	appConfig = &config.Config{}
	defer func() { appConfig = old }()

	path := writeSeedFile(t, make([]byte, prg.SeedSize-1))

	_, err := resolveSeed(path)
	require.Error(t, err)
	var ioErr *seedIOError
	assert.ErrorAs(t, err, &ioErr)
	assert.Equal(t, path, ioErr.Path)
}

func TestResolveSeedRejectsMissingFile(t *testing.T) {
	old := appConfig
	appConfig = &config.Config{}
	defer func() { appConfig = old }()

	_, err := resolveSeed(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	var ioErr *seedIOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestResolveSeedFallsBackToConfigHex(t *testing.T) {
	old := appConfig
	hex := make([]byte, prg.SeedSize)
	for i := range hex {
		hex[i] = 0xAB
	}
	appConfig = &config.Config{SeedHex: "ab" + repeat("ab", prg.SeedSize-1)}
	defer func() { appConfig = old }()

	seed, err := resolveSeed("")
	require.NoError(t, err)
	assert.Equal(t, hex, seed[:])
}

func TestResolveSeedDrawsRandomWhenNothingConfigured(t *testing.T) {
	old := appConfig
	appConfig = &config.Config{}
	defer func() { appConfig = old }()

	first, err := resolveSeed("")
	require.NoError(t, err)
	second, err := resolveSeed("")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
