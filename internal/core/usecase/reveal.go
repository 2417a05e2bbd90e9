package usecase

// maxRevealSteps bounds the length of a confidence reveal sequence.
const maxRevealSteps = 30

// ConfidenceRevealSteps produces the monotonically non-decreasing integer
// sequence the UI plays while revealing a confidence figure. The sequence
// holds at most maxRevealSteps values and always ends on exactly the target,
// regardless of step rounding. The generator has no opinion about timing;
// the host drives consumption (timer tick, animation frame, or a plain loop
// in tests). Targets are clamped to [0, 100].
func ConfidenceRevealSteps(target int) []int {
	if target < 0 {
		target = 0
	}
	if target > 100 {
		target = 100
	}
	if target == 0 {
		return []int{0}
	}

	step := (target + maxRevealSteps - 1) / maxRevealSteps
	steps := make([]int, 0, maxRevealSteps)
	for v := step; v < target; v += step {
		steps = append(steps, v)
	}
	return append(steps, target)
}
