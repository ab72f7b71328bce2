package stats

// Chart scaling constants. Raw minute values above SoftCap are visually
// compressed so one outlier day cannot dwarf the rest of the chart, while
// the mapping stays monotone so "above the cap" is still visible.
const (
	SoftCap         = 75.0 // minutes above which bars compress
	CompressionRate = 0.3  // slope applied to the portion above the cap
	ChartPadding    = 24.0 // vertical space reserved for labels
	MinBarHeight    = 2.0  // floor so zero/near-zero days stay visible
)

// VisualMax returns the scale ceiling for a dataset: the dataset maximum,
// capped at SoftCap. A dataset with no positive value scales against the
// cap itself so HeightFor never divides by zero.
func VisualMax(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 || max > SoftCap {
		return SoftCap
	}
	return max
}

// HeightFor maps a raw minute value to a bar height within containerHeight.
// Values at or below SoftCap scale linearly against visualMax; the portion
// above the cap is compressed by CompressionRate. The result is clamped to
// at least MinBarHeight.
func HeightFor(value, visualMax, containerHeight float64) float64 {
	if value < 0 {
		value = 0
	}
	if visualMax <= 0 {
		visualMax = SoftCap
	}

	usable := containerHeight - ChartPadding
	if usable < 0 {
		usable = 0
	}

	scaled := value
	if value > SoftCap {
		scaled = SoftCap + (value-SoftCap)*CompressionRate
	}

	h := scaled / visualMax * usable
	if h < MinBarHeight {
		h = MinBarHeight
	}
	return h
}
