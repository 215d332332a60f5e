package sim

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Configuration problems are
// detected before the loop starts; invariant violations indicate an engine
// bug and abort the run rather than corrupt the cost integrals.
var (
	ErrConfig        = errors.New("invalid simulation configuration")
	ErrInvariant     = errors.New("simulation invariant violated")
	ErrEmptySchedule = errors.New("event queue drained before horizon end")
)

// Policy is an (s,S) inventory policy: reorder up to S whenever a review
// finds the on-hand level below s.
type Policy struct {
	ReorderPoint int `yaml:"s"` // s
	OrderUpTo    int `yaml:"S"` // S
}

// DistSpec parameterizes a distribution for a variate class.
// Supported types: "exponential" (mean), "uniform" (min, max),
// "erlang" (shape, mean), "discrete" (handled via Config.DemandSizeCDF),
// "constant" (value).
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Config holds every parameter of a single simulation run.
type Config struct {
	Policy Policy

	// ReviewInterval is the fixed spacing N between inventory evaluations,
	// starting at time 0.
	ReviewInterval float64

	// InitialInventory is the on-hand level at time 0.
	InitialInventory int

	// MeanInterdemand is the mean of the exponential interdemand times.
	MeanInterdemand float64

	// DemandSizeCDF is the cumulative distribution of demand sizes: entry i
	// is P(size <= i+1). The last entry must be 1.
	DemandSizeCDF []float64

	// LeadTime is the delivery lag distribution (uniform or erlang).
	LeadTime DistSpec

	// Horizon is the run length distribution. "constant" reproduces the
	// textbook's fixed horizon; anything else consumes one draw from the
	// horizon stream before the run starts.
	Horizon DistSpec

	// Cost coefficients: K, i, h, pi in the textbook's notation.
	SetupCost        float64
	IncrementalCost  float64
	HoldingCostRate  float64
	ShortageCostRate float64

	Seed int64
}

// DefaultConfig returns the Law & Kelton single-product inventory
// parameters (policy left zero; callers pick one or sweep).
func DefaultConfig() Config {
	return Config{
		ReviewInterval:   1.0,
		InitialInventory: 60,
		MeanInterdemand:  0.10,
		DemandSizeCDF:    []float64{0.167, 0.500, 0.833, 1.000},
		LeadTime: DistSpec{
			Type:   "uniform",
			Params: map[string]float64{"min": 0.50, "max": 1.00},
		},
		Horizon: DistSpec{
			Type:   "constant",
			Params: map[string]float64{"value": 120},
		},
		SetupCost:        32.0,
		IncrementalCost:  3.0,
		HoldingCostRate:  1.0,
		ShortageCostRate: 5.0,
		Seed:             42,
	}
}

// Validate checks the configuration before a run starts. All failures wrap
// ErrConfig.
func (c *Config) Validate() error {
	if c.Policy.ReorderPoint >= c.Policy.OrderUpTo {
		return fmt.Errorf("%w: reorder point s=%d must be below order-up-to level S=%d",
			ErrConfig, c.Policy.ReorderPoint, c.Policy.OrderUpTo)
	}
	if c.ReviewInterval <= 0 {
		return fmt.Errorf("%w: review interval must be positive, got %v", ErrConfig, c.ReviewInterval)
	}
	if c.MeanInterdemand <= 0 {
		return fmt.Errorf("%w: mean interdemand time must be positive, got %v", ErrConfig, c.MeanInterdemand)
	}
	if err := validateCDF(c.DemandSizeCDF); err != nil {
		return err
	}
	if c.SetupCost < 0 || c.IncrementalCost < 0 || c.HoldingCostRate < 0 || c.ShortageCostRate < 0 {
		return fmt.Errorf("%w: cost coefficients must be non-negative", ErrConfig)
	}
	if _, err := NewSampler(c.LeadTime); err != nil {
		return fmt.Errorf("%w: lead time: %v", ErrConfig, err)
	}
	if _, err := NewSampler(c.Horizon); err != nil {
		return fmt.Errorf("%w: horizon: %v", ErrConfig, err)
	}
	return nil
}

func validateCDF(cdf []float64) error {
	if len(cdf) == 0 {
		return fmt.Errorf("%w: demand size CDF is empty", ErrConfig)
	}
	prev := 0.0
	for i, p := range cdf {
		if p < prev || p > 1 {
			return fmt.Errorf("%w: demand size CDF must be non-decreasing within [0,1], entry %d is %v", ErrConfig, i, p)
		}
		prev = p
	}
	if cdf[len(cdf)-1] != 1.0 {
		return fmt.Errorf("%w: demand size CDF must end at 1.0, got %v", ErrConfig, cdf[len(cdf)-1])
	}
	return nil
}
