package sheet

import "math"

// Select picks an evenly spaced subset of frames to fill a grid with the
// given capacity. When the frame count does not exceed the capacity every
// frame is returned in order. Otherwise the subset always contains the first
// and last frame, with the remaining picks spread as evenly as rounding
// allows; duplicate picks under extreme length mismatches are kept.
func Select(frames []Frame, capacity int) []Frame {
	if capacity <= 0 || len(frames) == 0 {
		return nil
	}
	if len(frames) <= capacity {
		selected := make([]Frame, len(frames))
		copy(selected, frames)
		return selected
	}
	if capacity == 1 {
		return []Frame{frames[0]}
	}

	step := float64(len(frames)-1) / float64(capacity-1)
	selected := make([]Frame, capacity)
	for i := 0; i < capacity; i++ {
		// Exact .5 positions round half-to-even.
		idx := int(math.RoundToEven(float64(i) * step))
		if idx > len(frames)-1 {
			idx = len(frames) - 1
		}
		selected[i] = frames[idx]
	}
	return selected
}
