package level

import "github.com/wzooom/AI-Game-Texture-Pipeline/common"

const (
	// correctionStep is how far an unreachable platform is lowered per pass.
	correctionStep = 50.0
	// floorClearance keeps corrected platforms from sinking into the ground.
	floorClearance = 100.0
)

// Validator decides which platforms a player can reach under a fixed jump
// envelope, and lowers the ones that cannot be. It is a pure function of its
// inputs apart from Lower's explicit mutation of the spec it is handed.
type Validator struct {
	MaxJumpHeight   float64
	MaxJumpDistance float64
}

func NewValidator(maxJumpHeight, maxJumpDistance float64) Validator {
	return Validator{MaxJumpHeight: maxJumpHeight, MaxJumpDistance: maxJumpDistance}
}

// reachableFrom reports whether a player standing on from can jump up to to.
// Height difference is positive when to is above from; only climbs within the
// jump height qualify, and the horizontal gap must be jumpable.
func (v Validator) reachableFrom(from, to common.Rect) bool {
	heightDiff := from.Y - to.Y
	if heightDiff < 0 || heightDiff > v.MaxJumpHeight {
		return false
	}
	return from.HorizontalGap(to) <= v.MaxJumpDistance
}

// Unreachable runs the fixed-point expansion: ground segments seed the
// reachable set, and every scan promotes any candidate reachable from any
// member of the set. The returned slice holds the indices (into candidates)
// of platforms that were never promoted. Worst case O(n^3) for n candidates,
// fine for layouts in the tens of platforms.
func (v Validator) Unreachable(ground, candidates []common.Rect) []int {
	reachable := make([]common.Rect, 0, len(ground)+len(candidates))
	reachable = append(reachable, ground...)

	pending := make(map[int]common.Rect, len(candidates))
	for i, c := range candidates {
		pending[i] = c
	}

	for len(pending) > 0 {
		promoted := promote(v, reachable, pending)
		if len(promoted) == 0 {
			break
		}
		for _, idx := range promoted {
			reachable = append(reachable, pending[idx])
			delete(pending, idx)
		}
	}

	unreachable := make([]int, 0, len(pending))
	for idx := range pending {
		unreachable = append(unreachable, idx)
	}
	return unreachable
}

func promote(v Validator, reachable []common.Rect, pending map[int]common.Rect) []int {
	var promoted []int
	for idx, candidate := range pending {
		for _, from := range reachable {
			if v.reachableFrom(from, candidate) {
				promoted = append(promoted, idx)
				break
			}
		}
	}
	return promoted
}

// Lower is the correction heuristic: drop the platform by a fixed step,
// clamped so it keeps a minimum clearance above the level floor. Best-effort;
// the caller re-validates in a bounded loop rather than after every single
// correction.
func (v Validator) Lower(p *PlatformSpec, levelHeight float64) {
	newY := p.Y + correctionStep
	maxY := levelHeight - floorClearance
	if newY > maxY {
		newY = maxY
	}
	p.Y = newY
}
