package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Sampler draws a non-negative real from a configured distribution.
type Sampler interface {
	Sample(rng *rand.Rand) float64
}

// ExponentialSampler draws exponentially-distributed values.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.mean
}

// UniformSampler draws uniformly from [min, max].
type UniformSampler struct {
	min, max float64
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	return s.min + rng.Float64()*(s.max-s.min)
}

// ErlangSampler draws Erlang(shape, mean) values, i.e. Gamma with integer
// shape, via Marsaglia-Tsang. Useful as a less variable lead-time model
// than the uniform lag.
type ErlangSampler struct {
	shape int
	mean  float64
}

func (s *ErlangSampler) Sample(rng *rand.Rand) float64 {
	scale := s.mean / float64(s.shape)
	return gammaRand(rng, float64(s.shape), scale)
}

// gammaRand samples from Gamma(shape, scale) using Marsaglia-Tsang's method.
// For shape >= 1: direct method.
// For shape < 1: Gamma(a) = Gamma(a+1) * U^(1/a).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)

	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// ConstantSampler always returns the same fixed value. Used for the
// textbook's deterministic horizon.
type ConstantSampler struct {
	value float64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}

// DiscreteCDFSampler draws integer sizes 1..n from a cumulative
// distribution via inverse CDF binary search.
type DiscreteCDFSampler struct {
	cdf []float64
}

func NewDiscreteCDFSampler(cdf []float64) (*DiscreteCDFSampler, error) {
	if err := validateCDF(cdf); err != nil {
		return nil, err
	}
	return &DiscreteCDFSampler{cdf: cdf}, nil
}

// SampleInt returns a value in {1, ..., len(cdf)}.
func (s *DiscreteCDFSampler) SampleInt(rng *rand.Rand) int {
	u := rng.Float64()
	idx := sort.SearchFloat64s(s.cdf, u)
	if idx >= len(s.cdf) {
		idx = len(s.cdf) - 1
	}
	return idx + 1
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewSampler creates a Sampler from a DistSpec.
func NewSampler(spec DistSpec) (Sampler, error) {
	switch spec.Type {
	case "exponential":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		if spec.Params["mean"] <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %v", spec.Params["mean"])
		}
		return &ExponentialSampler{mean: spec.Params["mean"]}, nil

	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := spec.Params["min"], spec.Params["max"]
		if lo < 0 || hi < lo {
			return nil, fmt.Errorf("uniform bounds must satisfy 0 <= min <= max, got [%v, %v]", lo, hi)
		}
		return &UniformSampler{min: lo, max: hi}, nil

	case "erlang":
		if err := requireParam(spec.Params, "shape", "mean"); err != nil {
			return nil, err
		}
		shape := int(spec.Params["shape"])
		if shape < 1 {
			return nil, fmt.Errorf("erlang shape must be >= 1, got %v", spec.Params["shape"])
		}
		if spec.Params["mean"] <= 0 {
			return nil, fmt.Errorf("erlang mean must be positive, got %v", spec.Params["mean"])
		}
		return &ErlangSampler{shape: shape, mean: spec.Params["mean"]}, nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		if spec.Params["value"] <= 0 {
			return nil, fmt.Errorf("constant value must be positive, got %v", spec.Params["value"])
		}
		return &ConstantSampler{value: spec.Params["value"]}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}

// VariateSource produces every random draw the engine consumes. Each
// variate class draws from its own PartitionedRNG stream, exactly one draw
// per call.
type VariateSource struct {
	rng *PartitionedRNG

	interdemand Sampler
	demandSize  *DiscreteCDFSampler
	leadTime    Sampler
	horizon     Sampler
}

// NewVariateSource builds a VariateSource from a validated Config.
func NewVariateSource(cfg *Config, rng *PartitionedRNG) (*VariateSource, error) {
	demand, err := NewDiscreteCDFSampler(cfg.DemandSizeCDF)
	if err != nil {
		return nil, err
	}
	lead, err := NewSampler(cfg.LeadTime)
	if err != nil {
		return nil, fmt.Errorf("lead time: %w", err)
	}
	horizon, err := NewSampler(cfg.Horizon)
	if err != nil {
		return nil, fmt.Errorf("horizon: %w", err)
	}
	return &VariateSource{
		rng:         rng,
		interdemand: &ExponentialSampler{mean: cfg.MeanInterdemand},
		demandSize:  demand,
		leadTime:    lead,
		horizon:     horizon,
	}, nil
}

// NextInterdemandTime returns the time until the next demand arrival (> 0).
func (v *VariateSource) NextInterdemandTime() float64 {
	t := v.interdemand.Sample(v.rng.ForStream(StreamInterdemand))
	if t <= 0 {
		t = math.SmallestNonzeroFloat64
	}
	return t
}

// NextDemandSize returns the size of a demand (>= 1).
func (v *VariateSource) NextDemandSize() int {
	return v.demandSize.SampleInt(v.rng.ForStream(StreamDemandSize))
}

// NextLeadTime returns the delivery lag for a freshly placed order (>= 0).
func (v *VariateSource) NextLeadTime() float64 {
	t := v.leadTime.Sample(v.rng.ForStream(StreamLeadTime))
	if t < 0 {
		t = 0
	}
	return t
}

// NextHorizonLength returns the run length (> 0).
func (v *VariateSource) NextHorizonLength() float64 {
	return v.horizon.Sample(v.rng.ForStream(StreamHorizon))
}
