package reconcile

import "github.com/arthur-debert/linkdot/pkg/types"

// Aggregate reduces a pass's flat outcome list to one lifecycle state.
//
// The boolean outcomes read as "present and correctly linked" after an
// install or verify pass, but as "still present after attempted removal"
// after a remove pass. The two interpretations invert the all-true and
// all-false cases: fully removed reads as not installed, and a removal
// that removed nothing means the component must still be present.
func Aggregate(outcomes []bool, removal bool) types.InstallState {
	if len(outcomes) == 0 {
		// Nothing linkable was found: every path ignored, or an empty
		// component directory.
		return types.StateUnknown
	}

	trues := 0
	for _, ok := range outcomes {
		if ok {
			trues++
		}
	}

	switch trues {
	case len(outcomes):
		if removal {
			return types.StateNotInstalled
		}
		return types.StateInstalled
	case 0:
		if removal {
			return types.StateInstalled
		}
		return types.StateNotInstalled
	default:
		return types.StatePartialInstall
	}
}
