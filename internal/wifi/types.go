package wifi

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Network represents one observed wireless network. It is an immutable
// value constructed once per parsed output line.
type Network struct {
	// SSID is the human-readable network name. May be empty or contain spaces.
	SSID string `json:"ssid"`
	// BSSID is the colon-separated MAC address of the access point's radio.
	// May be absent when the scan ran without sufficient privileges.
	BSSID string `json:"bssid"`
	// Quality is the normalized signal score, nominally 0-150. It is always
	// derived from the raw RSSI via Quality() and is not clamped, so
	// out-of-range RSSI input yields out-of-range quality.
	Quality int `json:"quality"`
	// Security is the free-form security descriptor as reported by the
	// scan utility, e.g. "WPA2(PSK/AES/AES)".
	Security string `json:"security"`
}

// Key returns the identity used for deduplication: SSID and BSSID joined
// by a single space.
func (n Network) Key() string {
	return n.SSID + " " + n.BSSID
}

// String implements fmt.Stringer.
func (n Network) String() string {
	return fmt.Sprintf("Network(ssid=%s, bssid=%s, quality=%d, security=%s)",
		n.SSID, n.BSSID, n.Quality, n.Security)
}

// ScanStats contains summary statistics about a scan.
type ScanStats struct {
	// Found is the number of networks successfully parsed
	Found int `json:"found"`
	// Skipped is the number of output lines dropped as malformed or ad-hoc
	Skipped int `json:"skipped"`
}

// ScanResult contains the complete results of one wireless scan.
type ScanResult struct {
	// ID uniquely identifies this scan invocation
	ID string `json:"id"`
	// Platform is the platform identifier the scan ran on
	Platform string `json:"platform"`
	// Networks contains all parsed networks in output order
	Networks []Network `json:"networks"`
	// Stats contains summary statistics about the scan
	Stats ScanStats `json:"stats"`
	// StartTime is when the scan started
	StartTime time.Time `json:"start_time"`
	// EndTime is when the scan completed
	EndTime time.Time `json:"end_time"`
	// Duration is how long the scan took
	Duration time.Duration `json:"duration"`
}

// NewScanResult creates a new scan result with the current time as start time.
func NewScanResult(platform string) *ScanResult {
	return &ScanResult{
		ID:        uuid.New().String(),
		Platform:  platform,
		Networks:  make([]Network, 0),
		StartTime: time.Now(),
	}
}

// Complete marks the scan as complete and calculates duration.
func (r *ScanResult) Complete() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}
