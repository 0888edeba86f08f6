package wifi

// Quality converts a raw RSSI measurement (dBm, typically negative) to the
// nominal 0-150 quality scale. The mapping is linear and intentionally not
// clamped: an RSSI outside the usual -100..-25 window produces an
// out-of-band score, which callers may treat as anomalous.
func Quality(rssi int) int {
	return 2 * (rssi + 100)
}

// Band classifies a quality score for presentation purposes.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

// Quality band thresholds.
const (
	thresholdExcellent = 70
	thresholdGood      = 50
	thresholdFair      = 30
)

// BandFor returns the presentation band for a quality score.
func BandFor(quality int) Band {
	switch {
	case quality >= thresholdExcellent:
		return BandExcellent
	case quality >= thresholdGood:
		return BandGood
	case quality >= thresholdFair:
		return BandFair
	default:
		return BandPoor
	}
}
