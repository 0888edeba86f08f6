package wifi

import (
	"context"
	"time"

	apperrors "github.com/airscout/airscout/internal/errors"
	"github.com/airscout/airscout/internal/logging"
	"github.com/airscout/airscout/internal/metrics"
)

// ScannerOptions configures a Scanner. Zero values select sensible
// defaults: the built-in registry, a shell runner with the default timeout,
// and the process-wide logger and metrics registry.
type ScannerOptions struct {
	// Registry selects the variant for the requested platform.
	Registry *Registry

	// Runner executes the scan command. Tests supply a FixtureRunner here
	// instead of toggling process-wide state.
	Runner CommandRunner

	// CommandOverride replaces the variant's command template when set.
	CommandOverride string

	// Logger receives scan progress and parse diagnostics.
	Logger *logging.Logger

	// Metrics receives scan counters and timings.
	Metrics *metrics.Registry
}

// Scanner orchestrates one synchronous wireless scan: variant lookup,
// command execution, output parsing. Scanners are stateless across calls
// and safe for concurrent use.
type Scanner struct {
	registry        *Registry
	runner          CommandRunner
	commandOverride string
	logger          *logging.Logger
	metrics         *metrics.Registry
}

// NewScanner creates a scanner from options, filling in defaults for any
// unset field.
func NewScanner(opts ScannerOptions) *Scanner {
	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	runner := opts.Runner
	if runner == nil {
		runner = &ExecRunner{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	meters := opts.Metrics
	if meters == nil {
		meters = metrics.Default()
	}
	return &Scanner{
		registry:        registry,
		runner:          runner,
		commandOverride: opts.CommandOverride,
		logger:          logger,
		metrics:         meters,
	}
}

// Scan runs one wireless scan for the given platform identifier and returns
// the parsed networks in output order. It fails only on platform- or
// command-level errors; malformed output lines are dropped and counted.
func (s *Scanner) Scan(ctx context.Context, platform string) (*ScanResult, error) {
	variant, err := s.registry.Lookup(platform)
	if err != nil {
		s.metrics.Counter(metrics.MetricScanErrors, metrics.Labels{"platform": platform})
		return nil, err
	}

	command := variant.CommandLine()
	if s.commandOverride != "" {
		command = s.commandOverride
	}

	result := NewScanResult(platform)
	log := s.logger.WithPlatform(platform).WithFields("scan_id", result.ID)
	log.Debug("Running scan command", "command", command, "privileged", variant.RequiresPrivilege)

	started := time.Now()
	raw, err := s.runner.Run(ctx, command)
	s.metrics.Histogram(metrics.MetricScanDuration, time.Since(started).Seconds(),
		metrics.Labels{"platform": platform})
	if err != nil {
		s.metrics.Counter(metrics.MetricScanErrors, metrics.Labels{"platform": platform})
		log.Error("Scan command failed", "error", err)
		if _, ok := err.(*apperrors.ScanError); ok {
			return nil, err
		}
		return nil, apperrors.ErrCommandFailed(command, err)
	}

	parser := &Parser{
		OnSkip: func(line string, reason error) {
			result.Stats.Skipped++
			s.metrics.Counter(metrics.MetricLinesSkipped, metrics.Labels{"platform": platform})
			log.DebugParse("Dropped scan output line", "reason", reason, "line", line)
		},
	}
	result.Networks = parser.Parse(raw)
	result.Stats.Found = len(result.Networks)
	result.Complete()

	s.metrics.Counter(metrics.MetricScanTotal, metrics.Labels{"platform": platform})
	s.metrics.CounterAdd(metrics.MetricNetworksFound, float64(result.Stats.Found),
		metrics.Labels{"platform": platform})
	log.InfoScan("Scan completed", platform,
		"networks", result.Stats.Found,
		"skipped_lines", result.Stats.Skipped,
		"duration", result.Duration)

	return result, nil
}
