package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

var (
	// CLI flags for the inventory model parameters
	seed             int64     // Seed for all variate streams
	reorderPoint     int       // s: reorder when on-hand drops below this at a review
	orderUpTo        int       // S: order-up-to level
	reviewInterval   float64   // N: time between inventory evaluations
	initialInventory int       // On-hand level at time 0
	meanInterdemand  float64   // Mean of exponential interdemand times
	demandSizeCDF    []float64 // Cumulative distribution of demand sizes 1..n
	leadTimeMin      float64   // Uniform delivery lag lower bound
	leadTimeMax      float64   // Uniform delivery lag upper bound
	horizonLength    float64   // Fixed simulation horizon

	// CLI flags for cost coefficients
	setupCost        float64 // K: fixed cost per order placed
	incrementalCost  float64 // i: per-unit cost of an order
	holdingCostRate  float64 // h: cost per unit held per unit time
	shortageCostRate float64 // pi: cost per unit short per unit time
)

// flagConfig assembles a sim.Config from the CLI flags
func flagConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Policy = sim.Policy{ReorderPoint: reorderPoint, OrderUpTo: orderUpTo}
	cfg.ReviewInterval = reviewInterval
	cfg.InitialInventory = initialInventory
	cfg.MeanInterdemand = meanInterdemand
	cfg.DemandSizeCDF = demandSizeCDF
	cfg.LeadTime = sim.DistSpec{
		Type:   "uniform",
		Params: map[string]float64{"min": leadTimeMin, "max": leadTimeMax},
	}
	cfg.Horizon = sim.DistSpec{
		Type:   "constant",
		Params: map[string]float64{"value": horizonLength},
	}
	cfg.SetupCost = setupCost
	cfg.IncrementalCost = incrementalCost
	cfg.HoldingCostRate = holdingCostRate
	cfg.ShortageCostRate = shortageCostRate
	cfg.Seed = seed
	return cfg
}

// runCmd executes a single policy run using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation for a single (s,S) policy",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := flagConfig()
		logrus.Infof("Starting run: policy (%d,%d), horizon=%v, seed=%d",
			cfg.Policy.ReorderPoint, cfg.Policy.OrderUpTo, horizonLength, cfg.Seed)

		startTime := time.Now()
		s, err := sim.NewSimulator(&cfg)
		if err != nil {
			logrus.Fatalf("Failed to initialize simulator: %v", err)
		}
		report, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		fmt.Print(sim.FormatTable([]sim.PolicyResult{{Policy: cfg.Policy, Report: *report}}))
		logrus.Infof("Processed %d orders over horizon %.2f in %v", len(s.PlacedOrders), s.Horizon, time.Since(startTime))
	},
}

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random variate generation")
	runCmd.Flags().IntVar(&reorderPoint, "reorder-point", 20, "Reorder point s")
	runCmd.Flags().IntVar(&orderUpTo, "order-up-to", 40, "Order-up-to level S")
	runCmd.Flags().Float64Var(&reviewInterval, "review-interval", 1.0, "Time between inventory reviews")
	runCmd.Flags().IntVar(&initialInventory, "initial-inventory", 60, "On-hand inventory at time 0")
	runCmd.Flags().Float64Var(&meanInterdemand, "mean-interdemand", 0.10, "Mean interdemand time")
	runCmd.Flags().Float64SliceVar(&demandSizeCDF, "demand-size-cdf", []float64{0.167, 0.500, 0.833, 1.000}, "Comma-separated cumulative distribution of demand sizes 1..n")
	runCmd.Flags().Float64Var(&leadTimeMin, "lead-time-min", 0.50, "Uniform delivery lag lower bound")
	runCmd.Flags().Float64Var(&leadTimeMax, "lead-time-max", 1.00, "Uniform delivery lag upper bound")
	runCmd.Flags().Float64Var(&horizonLength, "horizon", 120, "Simulation horizon length")
	runCmd.Flags().Float64Var(&setupCost, "setup-cost", 32.0, "Fixed cost per order placed")
	runCmd.Flags().Float64Var(&incrementalCost, "incremental-cost", 3.0, "Per-unit order cost")
	runCmd.Flags().Float64Var(&holdingCostRate, "holding-cost", 1.0, "Holding cost per unit per unit time")
	runCmd.Flags().Float64Var(&shortageCostRate, "shortage-cost", 5.0, "Shortage cost per unit per unit time")
}
