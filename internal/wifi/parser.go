package wifi

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// headerPrefix identifies the column header line of the scan utility
	// output once leading whitespace is trimmed.
	headerPrefix = "SSID BSSID"

	// adhocMarker flags ad-hoc (IBSS) networks, which are excluded.
	adhocMarker = "IBSS"

	// rssiFieldWidth is the fixed width of the RSSI column.
	rssiFieldWidth = 4

	// ssidToken is the header token whose end position bounds the SSID column.
	ssidToken = "SSID"
	// rssiToken is the header token that starts the RSSI column.
	rssiToken = "RSSI"
	// securityToken is the header token that starts the security column.
	securityToken = "SECURITY"
)

// columnBoundaries holds the field offsets computed from one header line.
// They apply to all following data lines until the next header line.
type columnBoundaries struct {
	ssidEnd       int
	rssiStart     int
	securityStart int
}

// locateColumns computes field boundaries from a header line. It returns
// false if any expected column token is missing.
func locateColumns(line string) (columnBoundaries, bool) {
	// The SSID token is found first; "BSSID" also contains "SSID" but
	// appears later in the line.
	ssidIdx := strings.Index(line, ssidToken)
	rssiIdx := strings.Index(line, rssiToken)
	securityIdx := strings.Index(line, securityToken)
	if ssidIdx < 0 || rssiIdx < 0 || securityIdx < 0 {
		return columnBoundaries{}, false
	}
	// Tokens must appear in column order with room for the BSSID column
	// between SSID and RSSI.
	if rssiIdx < ssidIdx+len(ssidToken)+2 || securityIdx < rssiIdx+rssiFieldWidth {
		return columnBoundaries{}, false
	}
	return columnBoundaries{
		ssidEnd:       ssidIdx + len(ssidToken),
		rssiStart:     rssiIdx,
		securityStart: securityIdx,
	}, true
}

// slice extracts one Network from a fixed-column data line. It fails when an
// offset lies outside the line's bounds or the RSSI field is not an integer.
func (b columnBoundaries) slice(line string) (Network, error) {
	if len(line) < b.rssiStart+rssiFieldWidth || len(line) < b.securityStart {
		return Network{}, fmt.Errorf("line too short for column layout (%d chars)", len(line))
	}

	ssid := strings.TrimSpace(line[:b.ssidEnd])
	// The gap between ssidEnd and rssiStart holds the BSSID plus one
	// separator space on each side.
	bssid := strings.TrimSpace(line[b.ssidEnd+1 : b.rssiStart-1])

	rssiField := strings.TrimSpace(line[b.rssiStart : b.rssiStart+rssiFieldWidth])
	rssi, err := strconv.Atoi(rssiField)
	if err != nil {
		return Network{}, fmt.Errorf("invalid RSSI field %q: %w", rssiField, err)
	}

	// Security descriptor runs to end of line and is deliberately untrimmed.
	security := line[b.securityStart:]

	return Network{
		SSID:     ssid,
		BSSID:    bssid,
		Quality:  Quality(rssi),
		Security: security,
	}, nil
}

// Parser converts raw scan utility output into Network records.
//
// The output format is a header line containing the literal tokens
// "SSID", "BSSID", "RSSI", and "SECURITY", followed by fixed-column data
// lines. Boundaries are recomputed at every header occurrence, so
// multi-section output parses correctly. Lines before the first header,
// blank lines, ad-hoc (IBSS) entries, and lines that fail field extraction
// are dropped; dropping is non-fatal and reported through OnSkip.
type Parser struct {
	// OnSkip, if set, is invoked for every dropped data line with the line
	// and the reason it was dropped.
	OnSkip func(line string, reason error)
}

// Parse scans the raw text once, left to right, and returns all parsed
// networks in input order. Empty input or input without any header line
// yields an empty slice, not an error.
func (p *Parser) Parse(raw string) []Network {
	networks := make([]Network, 0)
	var bounds columnBoundaries
	haveHeader := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, headerPrefix) {
			if b, ok := locateColumns(line); ok {
				bounds = b
				haveHeader = true
			} else {
				haveHeader = false
				p.skip(line, fmt.Errorf("header line missing column tokens"))
			}
			continue
		}

		if !haveHeader || trimmed == "" {
			continue
		}

		if strings.Contains(line, adhocMarker) {
			p.skip(line, fmt.Errorf("ad-hoc network excluded"))
			continue
		}

		network, err := bounds.slice(line)
		if err != nil {
			p.skip(line, err)
			continue
		}
		networks = append(networks, network)
	}

	return networks
}

func (p *Parser) skip(line string, reason error) {
	if p.OnSkip != nil {
		p.OnSkip(line, reason)
	}
}

// ParseAirport parses airport -s style output with default diagnostics
// (skipped lines are silently dropped). It is the ParseFunc for the
// darwin variant.
func ParseAirport(raw string) []Network {
	p := &Parser{}
	return p.Parse(raw)
}
