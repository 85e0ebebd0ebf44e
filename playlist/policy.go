// ABOUTME: Closed enumeration of the three energy policies
// ABOUTME: Each policy carries its path direction rule and its within-group BPM sort rule

package playlist

import "fmt"

// EnergyPolicy declares the BPM contour of the final set. It governs both
// which end of the solved key path the traversal starts from and the BPM
// sort direction inside each key group.
type EnergyPolicy int

const (
	// RampUp builds energy: the path starts at the low-BPM end and every
	// group sorts BPM ascending.
	RampUp EnergyPolicy = iota

	// RampDown winds energy down: high-BPM end first, groups descending.
	RampDown

	// Wave alternates the sort direction per group and never flips the
	// path: both ends of the set stay mixed, which is the point.
	Wave
)

// policyNames keeps the external tokens in one place
var policyNames = map[EnergyPolicy]string{
	RampUp:   "ramp_up",
	RampDown: "ramp_down",
	Wave:     "wave",
}

// ParseEnergyPolicy resolves an external policy token
func ParseEnergyPolicy(s string) (EnergyPolicy, error) {
	for policy, name := range policyNames {
		if name == s {
			return policy, nil
		}
	}

	return RampUp, fmt.Errorf("unknown energy policy %q (want ramp_up, ramp_down or wave)", s)
}

// String returns the external token for the policy
func (p EnergyPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("EnergyPolicy(%d)", int(p))
}

// reversePath reports whether the solved key path should be traversed from
// its far end, given the mean BPM of the boundary groups. Wave keeps the
// path as solved regardless of the boundaries.
func (p EnergyPolicy) reversePath(firstMean, lastMean float64) bool {
	switch p {
	case RampUp:
		return firstMean > lastMean
	case RampDown:
		return firstMean < lastMean
	default:
		return false
	}
}

// ascendingAt reports the BPM sort direction for the group at the given
// position along the path. Only Wave varies by position.
func (p EnergyPolicy) ascendingAt(groupIdx int) bool {
	switch p {
	case RampDown:
		return false
	case Wave:
		return groupIdx%2 == 0
	default:
		return true
	}
}
