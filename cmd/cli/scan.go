package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/airscout/airscout/internal/config"
	"github.com/airscout/airscout/internal/logging"
	"github.com/airscout/airscout/internal/wifi"
)

var (
	scanTimeout  time.Duration
	scanPlatform string
	scanCommand  string
	scanCount    bool
	scanOutput   string
	scanNoColor  bool
)

// ANSI escape sequences for quality band coloring.
const (
	colorGreen   = "\033[0;32m"
	colorYellow  = "\033[1;33m"
	colorMagenta = "\033[35m"
	colorRed     = "\033[1;31m"
	colorReset   = "\033[0m"
)

// bandColors maps quality bands to presentation attributes. The mapping is
// an explicit configuration table passed into rendering, not a property of
// the scan core.
var bandColors = map[wifi.Band]string{
	wifi.BandExcellent: colorGreen,
	wifi.BandGood:      colorYellow,
	wifi.BandFair:      colorMagenta,
	wifi.BandPoor:      colorRed,
}

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for visible wireless networks",
	Long: `Scan for wireless networks visible to this host using the operating
system's scan utility and display them ranked by signal quality.

The default scanner requires elevated privileges to expose access point
hardware addresses; without them the BSSID column may be empty.`,
	Example: `  airscout scan
  airscout scan --count
  airscout scan --output json
  airscout scan --timeout 10s
  airscout scan --command "cat testdata/airport.txt"`,
	Run: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 0, "Scan command timeout (0 uses configured default)")
	scanCmd.Flags().StringVar(&scanPlatform, "platform", "", "Override host platform detection (e.g. darwin)")
	scanCmd.Flags().StringVar(&scanCommand, "command", "", "Override the scan utility command")
	scanCmd.Flags().BoolVarP(&scanCount, "count", "n", false, "Print only the number of networks found")
	scanCmd.Flags().StringVar(&scanOutput, "output", "", "Output format: table or json")
	scanCmd.Flags().BoolVar(&scanNoColor, "no-color", false, "Disable quality band coloring")
}

func runScan(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(viper.ConfigFileUsed())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyScanFlags(cfg)

	platform := cfg.Scan.Platform
	if platform == "" {
		platform = runtime.GOOS
	}

	scanner := wifi.NewScanner(wifi.ScannerOptions{
		Runner:          &wifi.ExecRunner{Timeout: cfg.Scan.Timeout.Std()},
		CommandOverride: cfg.Scan.Command,
		Logger:          logging.Default(),
	})

	result, err := scanner.Scan(context.Background(), platform)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	networks := wifi.Dedupe(result.Networks)

	switch {
	case scanCount:
		fmt.Println(len(networks))
	case cfg.Output.Format == "json":
		displayNetworksJSON(result, networks)
	default:
		displayNetworksTable(networks, cfg.Output.Color)
	}
}

// applyScanFlags overlays command-line flags onto the loaded configuration.
func applyScanFlags(cfg *config.Config) {
	if scanTimeout > 0 {
		cfg.Scan.Timeout = config.Duration(scanTimeout)
	}
	if scanPlatform != "" {
		cfg.Scan.Platform = scanPlatform
	}
	if scanCommand != "" {
		cfg.Scan.Command = scanCommand
	}
	if scanOutput != "" {
		cfg.Output.Format = scanOutput
	}
	if scanNoColor {
		cfg.Output.Color = false
	}
}

// displayNetworksTable renders networks sorted by descending quality with
// quality band coloring.
func displayNetworksTable(networks []wifi.Network, color bool) {
	sorted := make([]wifi.Network, len(networks))
	copy(sorted, networks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quality > sorted[j].Quality
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("SSID", "BSSID", "Quality", "Security")

	for _, network := range sorted {
		row := []string{
			network.SSID,
			network.BSSID,
			strconv.Itoa(network.Quality),
			network.Security,
		}
		if color {
			tint := bandColors[wifi.BandFor(network.Quality)]
			for i, cell := range row {
				row[i] = tint + cell + colorReset
			}
		}
		_ = table.Append(row)
	}

	_ = table.Render()
}

// displayNetworksJSON renders the scan result as indented JSON.
func displayNetworksJSON(result *wifi.ScanResult, networks []wifi.Network) {
	output := struct {
		Networks []wifi.Network `json:"networks"`
		Count    int            `json:"count"`
		ScanID   string         `json:"scan_id"`
		Duration string         `json:"duration"`
	}{
		Networks: networks,
		Count:    len(networks),
		ScanID:   result.ID,
		Duration: result.Duration.String(),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
