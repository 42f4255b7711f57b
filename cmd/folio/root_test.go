package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/folio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagDefaultsFromEnv(t *testing.T) {
	require.NoError(t, envErr)

	addr := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Equal(t, envDefaults.Addr, addr.DefValue)
	assert.NotEmpty(t, addr.DefValue)

	config := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, config)
	assert.Equal(t, envDefaults.Config, config.DefValue)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "folio version "+folio.Version+"\n", out.String())
}
