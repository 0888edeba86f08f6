// Package wifi provides core wireless network scanning functionality for airscout.
//
// This package contains the scan pipeline that powers airscout's wireless
// discovery: invoking the OS scan utility, normalizing its columnar text
// output into Network records, and scoring signal strength into a bounded
// quality value.
//
// # Overview
//
// The pipeline is built around the Variant structure, which couples a
// platform's scan command with its parsing strategy, and the Scanner, which
// orchestrates one scan: registry lookup, command execution, output decoding,
// and parsing. The main entry point is Scanner.Scan.
//
// # Main Components
//
//   - Quality: converts raw RSSI (dBm) to the 0-150 nominal quality scale
//   - Parser: locates column boundaries from header lines and slices
//     fixed-width data lines into Network records, dropping malformed or
//     ad-hoc lines without aborting the scan
//   - CommandRunner: the external process boundary; ExecRunner shells out
//     with a configurable timeout, FixtureRunner injects canned output
//   - Registry: maps a platform identifier to its Variant; unsupported
//     platforms fail before any command is invoked
//   - Aggregator: deduplicates records by SSID+BSSID, last write wins
//
// A scan either returns a (possibly empty) ordered record set or fails with
// a command- or platform-level error; per-line parse failures are reported
// through an optional diagnostic callback and never abort the scan.
package wifi
