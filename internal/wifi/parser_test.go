package wifi

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureHeader builds an airport-style header line with the SSID column
// right-aligned to the given width.
func fixtureHeader(ssidWidth int) string {
	return fmt.Sprintf("%*s %-17s %-4s %-7s %-2s %-2s %s",
		ssidWidth, "SSID", "BSSID", "RSSI", "CHANNEL", "HT", "CC",
		"SECURITY (auth/unicast/group)")
}

// fixtureLine builds a data line aligned to a fixtureHeader of the same
// SSID column width. The RSSI field is a string so malformed values can be
// injected.
func fixtureLine(ssidWidth int, ssid, bssid, rssi, channel, ht, cc, security string) string {
	return fmt.Sprintf("%*s %-17s %-4s %-7s %-2s %-2s %s",
		ssidWidth, ssid, bssid, rssi, channel, ht, cc, security)
}

const ssidWidth = 32

func TestParseSingleNetwork(t *testing.T) {
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		fixtureLine(ssidWidth, "HomeNet", "aa:bb:cc:dd:ee:ff", "-55", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
	}, "\n")

	parser := &Parser{}
	networks := parser.Parse(raw)

	require.Len(t, networks, 1)
	assert.Equal(t, "HomeNet", networks[0].SSID)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", networks[0].BSSID)
	assert.Equal(t, 90, networks[0].Quality)
	assert.Equal(t, "WPA2(PSK/AES/AES)", networks[0].Security)
}

func TestParsePreservesInputOrder(t *testing.T) {
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		fixtureLine(ssidWidth, "WeakNet", "11:11:11:11:11:11", "-90", "1", "Y", "US", "NONE"),
		fixtureLine(ssidWidth, "StrongNet", "22:22:22:22:22:22", "-40", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
	}, "\n")

	networks := (&Parser{}).Parse(raw)

	require.Len(t, networks, 2)
	assert.Equal(t, "WeakNet", networks[0].SSID)
	assert.Equal(t, "StrongNet", networks[1].SSID)
}

func TestParseSSIDWithSpaces(t *testing.T) {
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		fixtureLine(ssidWidth, "Coffee Shop Guest", "de:ad:be:ef:00:01", "-70", "11", "Y", "US", "WPA(PSK/TKIP/TKIP)"),
	}, "\n")

	networks := (&Parser{}).Parse(raw)

	require.Len(t, networks, 1)
	assert.Equal(t, "Coffee Shop Guest", networks[0].SSID)
	assert.Equal(t, 60, networks[0].Quality)
}

func TestParseEmptySSID(t *testing.T) {
	// Hidden networks report an empty SSID but are still valid records.
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		fixtureLine(ssidWidth, "", "aa:bb:cc:dd:ee:ff", "-60", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
	}, "\n")

	networks := (&Parser{}).Parse(raw)

	require.Len(t, networks, 1)
	assert.Equal(t, "", networks[0].SSID)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", networks[0].BSSID)
}

func TestParseExcludesAdhocNetworks(t *testing.T) {
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		fixtureLine(ssidWidth, "HomeNet", "aa:bb:cc:dd:ee:ff", "-55", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
		fixtureLine(ssidWidth, "adhocnet", "12:34:56:78:9a:bc", "-40", "11", "N", "--", "NONE (IBSS)"),
	}, "\n")

	var skipped []string
	parser := &Parser{OnSkip: func(line string, _ error) { skipped = append(skipped, line) }}
	networks := parser.Parse(raw)

	require.Len(t, networks, 1)
	assert.Equal(t, "HomeNet", networks[0].SSID)
	require.Len(t, skipped, 1)
	assert.Contains(t, skipped[0], "adhocnet")
}

func TestParseSkipsMalformedRSSI(t *testing.T) {
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		fixtureLine(ssidWidth, "GoodNet", "aa:aa:aa:aa:aa:aa", "-50", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
		fixtureLine(ssidWidth, "BadNet", "bb:bb:bb:bb:bb:bb", "??", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
		fixtureLine(ssidWidth, "AlsoGood", "cc:cc:cc:cc:cc:cc", "-80", "1", "Y", "US", "NONE"),
	}, "\n")

	var reasons []error
	parser := &Parser{OnSkip: func(_ string, reason error) { reasons = append(reasons, reason) }}
	networks := parser.Parse(raw)

	// The malformed line is dropped; its neighbors survive.
	require.Len(t, networks, 2)
	assert.Equal(t, "GoodNet", networks[0].SSID)
	assert.Equal(t, "AlsoGood", networks[1].SSID)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0].Error(), "RSSI")
}

func TestParseSkipsShortLines(t *testing.T) {
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		"garbage",
		fixtureLine(ssidWidth, "HomeNet", "aa:bb:cc:dd:ee:ff", "-55", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
	}, "\n")

	skips := 0
	parser := &Parser{OnSkip: func(string, error) { skips++ }}
	networks := parser.Parse(raw)

	require.Len(t, networks, 1)
	assert.Equal(t, 1, skips)
}

func TestParseNoHeader(t *testing.T) {
	raw := strings.Join([]string{
		"some preamble the utility printed",
		fixtureLine(ssidWidth, "HomeNet", "aa:bb:cc:dd:ee:ff", "-55", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
	}, "\n")

	networks := (&Parser{}).Parse(raw)

	assert.Empty(t, networks)
}

func TestParseEmptyInput(t *testing.T) {
	assert.Empty(t, (&Parser{}).Parse(""))
}

func TestParseBlankLinesIgnored(t *testing.T) {
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		"",
		fixtureLine(ssidWidth, "HomeNet", "aa:bb:cc:dd:ee:ff", "-55", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
		"",
	}, "\n")

	skips := 0
	parser := &Parser{OnSkip: func(string, error) { skips++ }}
	networks := parser.Parse(raw)

	require.Len(t, networks, 1)
	assert.Zero(t, skips, "blank lines are not diagnostic events")
}

func TestParseMultipleHeaderSections(t *testing.T) {
	// Boundaries are recomputed at each header, so sections with different
	// column layouts parse correctly.
	raw := strings.Join([]string{
		fixtureHeader(32),
		fixtureLine(32, "WideNet", "aa:bb:cc:dd:ee:ff", "-55", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
		fixtureHeader(20),
		fixtureLine(20, "NarrowNet", "11:22:33:44:55:66", "-72", "11", "Y", "US", "NONE"),
	}, "\n")

	networks := (&Parser{}).Parse(raw)

	require.Len(t, networks, 2)
	assert.Equal(t, "WideNet", networks[0].SSID)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", networks[0].BSSID)
	assert.Equal(t, "NarrowNet", networks[1].SSID)
	assert.Equal(t, "11:22:33:44:55:66", networks[1].BSSID)
	assert.Equal(t, 56, networks[1].Quality)
}

func TestParseSecurityUntrimmed(t *testing.T) {
	line := fixtureLine(ssidWidth, "HomeNet", "aa:bb:cc:dd:ee:ff", "-55", "6", "Y", "US", "WPA2(PSK/AES/AES) ")
	raw := fixtureHeader(ssidWidth) + "\n" + line

	networks := (&Parser{}).Parse(raw)

	require.Len(t, networks, 1)
	assert.Equal(t, "WPA2(PSK/AES/AES) ", networks[0].Security)
}

func TestParseAirport(t *testing.T) {
	raw := strings.Join([]string{
		fixtureHeader(ssidWidth),
		fixtureLine(ssidWidth, "HomeNet", "aa:bb:cc:dd:ee:ff", "-55", "6", "Y", "US", "WPA2(PSK/AES/AES)"),
	}, "\n")

	networks := ParseAirport(raw)

	require.Len(t, networks, 1)
	assert.Equal(t, 90, networks[0].Quality)
}

func TestLocateColumnsRejectsIncompleteHeader(t *testing.T) {
	_, ok := locateColumns("        SSID BSSID             RSSI CHANNEL")
	assert.False(t, ok, "header without SECURITY token must not establish boundaries")
}
