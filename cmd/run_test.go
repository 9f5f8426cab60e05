package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParameters(t *testing.T) {
	fileInput := []byte(`
interface: concave
n2: 1.33
`)
	file := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(file, fileInput, 0o644))

	require.NoError(t, runCmd.Flags().Set("params", file))
	require.NoError(t, runCmd.Flags().Set("n1", "1.7"))
	require.NoError(t, runCmd.Flags().Set("chi", "30"))

	params, err := runParameters(runCmd)
	require.NoError(t, err)

	// flags win over the file, the file wins over the defaults
	assert.Equal(t, 1.7, params.N1)
	assert.Equal(t, 30.0, params.ChiDeg)
	assert.Equal(t, "concave", params.Interface)
	assert.Equal(t, 1.33, params.N2)
	assert.Equal(t, 8.0, params.KW0)
}

func TestSolverSettingsFromConfig(t *testing.T) {
	// config-file values reach the bound keys when the flags are untouched
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(bytes.NewBufferString("solver: /opt/fdtd-solver\nworkdir: scratch\n")))

	assert.Equal(t, "/opt/fdtd-solver", viper.GetString("solver"))
	assert.Equal(t, "scratch", viper.GetString("workdir"))

	// an explicit flag wins over the config file
	require.NoError(t, runCmd.Flags().Set("solver", "./local-solver"))
	assert.Equal(t, "./local-solver", viper.GetString("solver"))
	assert.Equal(t, "scratch", viper.GetString("workdir"))
}
