package sim

import (
	"fmt"
	"strings"
)

// PolicyResult pairs a policy with its finalized cost report.
type PolicyResult struct {
	Policy Policy
	Report CostReport
}

// DefaultPolicies returns the nine (s,S) pairs of the reference table:
// s in {20, 40, 60}, S in {40, 60, 80, 100}, s < S.
func DefaultPolicies() []Policy {
	var policies []Policy
	for _, s := range []int{20, 40, 60} {
		for _, S := range []int{40, 60, 80, 100} {
			if s < S {
				policies = append(policies, Policy{ReorderPoint: s, OrderUpTo: S})
			}
		}
	}
	return policies
}

// RunPolicies evaluates each policy with a fresh Simulator. Every run uses
// the same seed, so all policies see identical demand and lead-time draws
// (common random numbers) and differ only in ordering decisions. Results
// come back in input order; the first failed run aborts the sweep.
func RunPolicies(cfg Config, policies []Policy) ([]PolicyResult, error) {
	results := make([]PolicyResult, 0, len(policies))
	for _, p := range policies {
		runCfg := cfg
		runCfg.Policy = p

		s, err := NewSimulator(&runCfg)
		if err != nil {
			return nil, fmt.Errorf("policy (%d,%d): %w", p.ReorderPoint, p.OrderUpTo, err)
		}
		report, err := s.Run()
		if err != nil {
			return nil, fmt.Errorf("policy (%d,%d): %w", p.ReorderPoint, p.OrderUpTo, err)
		}
		results = append(results, PolicyResult{Policy: p, Report: *report})
	}
	return results, nil
}

// FormatTable renders results as the reference report: one row per policy,
// costs with two decimal places.
func FormatTable(results []PolicyResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%10s%25s%25s%25s%25s\n",
		"Policy",
		"Average total cost",
		"Average ordering cost",
		"Average holding cost",
		"Average shortage cost")
	for _, r := range results {
		policy := fmt.Sprintf("(%3d,%3d)", r.Policy.ReorderPoint, r.Policy.OrderUpTo)
		fmt.Fprintf(&b, "%10s%25.2f%25.2f%25.2f%25.2f\n",
			policy,
			r.Report.AvgTotalCost,
			r.Report.AvgOrderingCost,
			r.Report.AvgHoldingCost,
			r.Report.AvgShortageCost)
	}
	return b.String()
}
