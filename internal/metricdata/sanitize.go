package metricdata

// Sanitize replaces every non-finite value with a linear interpolation
// between its nearest finite neighbors. With only a left neighbor the
// value is carried forward, with only a right neighbor carried
// backward, and with no finite neighbors at all it becomes 0. The
// result always has the same length as the input; the input is not
// modified.
func Sanitize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	out := make([]float64, len(values))
	copy(out, values)

	for i, v := range values {
		if !isFinite(v) {
			out[i] = interpolate(values, i)
		}
	}
	return out
}

// interpolate computes the replacement for a non-finite entry at index
// i. Neighbor lookup runs against the original values, so one bad run
// does not feed on its own replacements.
func interpolate(values []float64, i int) float64 {
	prevIdx, nextIdx := -1, -1

	for j := i - 1; j >= 0; j-- {
		if isFinite(values[j]) {
			prevIdx = j
			break
		}
	}
	for j := i + 1; j < len(values); j++ {
		if isFinite(values[j]) {
			nextIdx = j
			break
		}
	}

	switch {
	case prevIdx >= 0 && nextIdx >= 0:
		weight := float64(i-prevIdx) / float64(nextIdx-prevIdx)
		return values[prevIdx] + weight*(values[nextIdx]-values[prevIdx])
	case prevIdx >= 0:
		return values[prevIdx]
	case nextIdx >= 0:
		return values[nextIdx]
	default:
		return 0
	}
}
