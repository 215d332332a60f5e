package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

var configPath string // Optional YAML experiment file

// sweepCmd runs every policy in the experiment and prints the cost table
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the full (s,S) policy table and print the cost report",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := sim.DefaultConfig()
		policies := sim.DefaultPolicies()

		if configPath != "" {
			experiment, err := LoadExperimentConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load experiment config %s: %v", configPath, err)
			}
			cfg = experiment.SimConfig()
			if len(experiment.Policies) > 0 {
				policies = experiment.Policies
			}
		}

		logrus.Infof("Sweeping %d policies, seed=%d", len(policies), cfg.Seed)
		results, err := sim.RunPolicies(cfg, policies)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}

		fmt.Print(sim.FormatTable(results))
	},
}

func init() {
	sweepCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML experiment file (defaults to the built-in reference parameters)")
}
