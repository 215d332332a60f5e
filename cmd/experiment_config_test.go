package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

const sampleExperiment = `parameters:
  initial_inventory: 60
  review_interval: 1.0
  mean_interdemand_time: 0.10
  demand_size_cdf: [0.167, 0.500, 0.833, 1.000]
  lead_time:
    type: uniform
    params:
      min: 0.50
      max: 1.00
  horizon:
    type: constant
    params:
      value: 120
  setup_cost: 32.0
  incremental_cost: 3.0
  holding_cost_rate: 1.0
  shortage_cost_rate: 5.0
  seed: 1234
policies:
  - {s: 20, S: 40}
  - {s: 20, S: 80}
  - {s: 60, S: 100}
`

func writeTempExperiment(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExperimentConfig(t *testing.T) {
	path := writeTempExperiment(t, sampleExperiment)

	cfg, err := LoadExperimentConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Parameters.Seed)
	assert.Equal(t, 0.10, cfg.Parameters.MeanInterdemand)
	assert.Equal(t, "uniform", cfg.Parameters.LeadTime.Type)
	require.Len(t, cfg.Policies, 3)
	assert.Equal(t, sim.Policy{ReorderPoint: 60, OrderUpTo: 100}, cfg.Policies[2])
}

func TestLoadExperimentConfig_StrictFields(t *testing.T) {
	path := writeTempExperiment(t, "parameters:\n  reveiw_interval: 1.0\n")
	_, err := LoadExperimentConfig(path)
	assert.Error(t, err, "typoed field names must fail loudly")
}

func TestLoadExperimentConfig_MissingFile(t *testing.T) {
	_, err := LoadExperimentConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestExperimentConfig_SimConfig(t *testing.T) {
	path := writeTempExperiment(t, sampleExperiment)
	experiment, err := LoadExperimentConfig(path)
	require.NoError(t, err)

	cfg := experiment.SimConfig()
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 60, cfg.InitialInventory)
	assert.Equal(t, []float64{0.167, 0.500, 0.833, 1.000}, cfg.DemandSizeCDF)

	cfg.Policy = experiment.Policies[0]
	require.NoError(t, cfg.Validate())
}

func TestExperimentConfig_SimConfigDefaults(t *testing.T) {
	// An empty parameter section falls back to the reference defaults
	path := writeTempExperiment(t, "policies:\n  - {s: 20, S: 40}\n")
	experiment, err := LoadExperimentConfig(path)
	require.NoError(t, err)

	cfg := experiment.SimConfig()
	defaults := sim.DefaultConfig()
	assert.Equal(t, defaults.MeanInterdemand, cfg.MeanInterdemand)
	assert.Equal(t, defaults.SetupCost, cfg.SetupCost)
	assert.Equal(t, defaults.Seed, cfg.Seed)
}
