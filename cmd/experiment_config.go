package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

// Parameters mirrors the model-parameter section of an experiment file.
type Parameters struct {
	InitialInventory int          `yaml:"initial_inventory"`
	ReviewInterval   float64      `yaml:"review_interval"`
	MeanInterdemand  float64      `yaml:"mean_interdemand_time"`
	DemandSizeCDF    []float64    `yaml:"demand_size_cdf"`
	LeadTime         sim.DistSpec `yaml:"lead_time"`
	Horizon          sim.DistSpec `yaml:"horizon"`
	SetupCost        float64      `yaml:"setup_cost"`
	IncrementalCost  float64      `yaml:"incremental_cost"`
	HoldingCostRate  float64      `yaml:"holding_cost_rate"`
	ShortageCostRate float64      `yaml:"shortage_cost_rate"`
	Seed             int64        `yaml:"seed"`
}

// ExperimentConfig represents a full experiment file: one parameter set and
// the list of (s,S) policies to evaluate against it.
type ExperimentConfig struct {
	Parameters Parameters   `yaml:"parameters"`
	Policies   []sim.Policy `yaml:"policies"`
}

// LoadExperimentConfig parses an experiment YAML file with strict field
// checking, so typos in parameter names fail loudly instead of silently
// falling back to zero values.
func LoadExperimentConfig(path string) (*ExperimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiment file: %w", err)
	}

	var cfg ExperimentConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse experiment YAML: %w", err)
	}
	return &cfg, nil
}

// SimConfig converts the parameter section into a sim.Config, filling any
// unset section with the built-in reference defaults.
func (e *ExperimentConfig) SimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	p := e.Parameters

	if p.InitialInventory != 0 {
		cfg.InitialInventory = p.InitialInventory
	}
	if p.ReviewInterval != 0 {
		cfg.ReviewInterval = p.ReviewInterval
	}
	if p.MeanInterdemand != 0 {
		cfg.MeanInterdemand = p.MeanInterdemand
	}
	if len(p.DemandSizeCDF) != 0 {
		cfg.DemandSizeCDF = p.DemandSizeCDF
	}
	if p.LeadTime.Type != "" {
		cfg.LeadTime = p.LeadTime
	}
	if p.Horizon.Type != "" {
		cfg.Horizon = p.Horizon
	}
	if p.SetupCost != 0 {
		cfg.SetupCost = p.SetupCost
	}
	if p.IncrementalCost != 0 {
		cfg.IncrementalCost = p.IncrementalCost
	}
	if p.HoldingCostRate != 0 {
		cfg.HoldingCostRate = p.HoldingCostRate
	}
	if p.ShortageCostRate != 0 {
		cfg.ShortageCostRate = p.ShortageCostRate
	}
	if p.Seed != 0 {
		cfg.Seed = p.Seed
	}
	return cfg
}
