package wifi

import (
	"fmt"
	"sync"

	apperrors "github.com/airscout/airscout/internal/errors"
)

// PlatformDarwin is the platform identifier for macOS hosts, matching
// runtime.GOOS.
const PlatformDarwin = "darwin"

// airportCommand is the macOS scan utility. The airport binary lives inside
// a private framework and is not on PATH.
const airportCommand = "/System/Library/PrivateFrameworks/Apple80211.framework" +
	"/Versions/Current/Resources/airport -s"

// ParseFunc converts decoded scan utility output into an ordered sequence
// of Network records.
type ParseFunc func(raw string) []Network

// Variant couples one platform's scan command template with its parsing
// strategy. A Variant is stateless beyond its configuration; it is selected
// once per scan request.
type Variant struct {
	// Platform is the platform identifier this variant serves (runtime.GOOS
	// values such as "darwin").
	Platform string

	// Command is the shell command template that produces scan output.
	Command string

	// RequiresPrivilege marks commands that need elevation to expose
	// hardware addresses. The privilege requirement is explicit
	// configuration rather than a hidden part of the command string.
	RequiresPrivilege bool

	// Parse is the parsing strategy for this platform's output format.
	Parse ParseFunc
}

// CommandLine returns the full command to execute, applying the privilege
// escalation prefix when the variant requires it.
func (v Variant) CommandLine() string {
	if v.RequiresPrivilege {
		return "sudo " + v.Command
	}
	return v.Command
}

// Validate checks that the variant is complete enough to register.
func (v Variant) Validate() error {
	if v.Platform == "" {
		return fmt.Errorf("variant platform is required")
	}
	if v.Command == "" {
		return fmt.Errorf("variant command is required")
	}
	if v.Parse == nil {
		return fmt.Errorf("variant parse function is required")
	}
	return nil
}

// Registry maps platform identifiers to scanner variants. It is read-only
// after setup and safe for concurrent lookups.
type Registry struct {
	mu       sync.RWMutex
	variants map[string]Variant
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		variants: make(map[string]Variant),
	}
}

// DefaultRegistry returns a registry with the built-in variants. Exactly
// one variant ships by default: macOS via airport -s, which needs sudo for
// BSSID visibility on Monterey and later.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	_ = registry.Register(Variant{
		Platform:          PlatformDarwin,
		Command:           airportCommand,
		RequiresPrivilege: true,
		Parse:             ParseAirport,
	})
	return registry
}

// Register adds or replaces a variant for its platform. Adding support for
// another operating system means registering a new variant, not subclassing.
func (r *Registry) Register(v Variant) error {
	if err := v.Validate(); err != nil {
		return apperrors.NewConfigError(apperrors.CodeValidation, err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[v.Platform] = v
	return nil
}

// Lookup returns the variant registered for a platform. Hosts without a
// registered variant fail here, before any command is invoked.
func (r *Registry) Lookup(platform string) (Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variant, ok := r.variants[platform]
	if !ok {
		return Variant{}, apperrors.ErrUnsupportedPlatform(platform)
	}
	return variant, nil
}

// Platforms returns all registered platform identifiers.
func (r *Registry) Platforms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	platforms := make([]string, 0, len(r.variants))
	for platform := range r.variants {
		platforms = append(platforms, platform)
	}
	return platforms
}
