// internal/dsp/extrema.go
package dsp

// ExtremumKind distinguishes local maxima from local minima
type ExtremumKind int

const (
	Maximum ExtremumKind = iota
	Minimum
)

// String returns the kind name
func (k ExtremumKind) String() string {
	switch k {
	case Maximum:
		return "maximum"
	case Minimum:
		return "minimum"
	default:
		return "unknown"
	}
}

// ExtremumMark is a classified sample ready for plotting
type ExtremumMark struct {
	Time      float64
	Amplitude float64
	Kind      ExtremumKind
}

// FindExtrema scans values once and returns the indices of strict local
// maxima and minima in ascending order. Only interior samples are compared
// against their immediate neighbours, so the first and last index are
// never reported. Equal neighbours (plateaus) produce no mark.
func FindExtrema(values []float64) (maxima, minima []int) {
	for i := 1; i < len(values)-1; i++ {
		prev, cur, next := values[i-1], values[i], values[i+1]
		if cur > prev && cur > next {
			maxima = append(maxima, i)
		} else if cur < prev && cur < next {
			minima = append(minima, i)
		}
	}
	return maxima, minima
}

// Marks converts extrema indices into time/amplitude marks, maxima first.
// Indices outside the signal are ignored.
func (s Signal) Marks(maxima, minima []int) []ExtremumMark {
	marks := make([]ExtremumMark, 0, len(maxima)+len(minima))
	add := func(idx []int, kind ExtremumKind) {
		for _, i := range idx {
			if i < 0 || i >= s.Len() {
				continue
			}
			marks = append(marks, ExtremumMark{Time: s.Times[i], Amplitude: s.Values[i], Kind: kind})
		}
	}
	add(maxima, Maximum)
	add(minima, Minimum)
	return marks
}
