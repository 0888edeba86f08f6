package wifi

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	apperrors "github.com/airscout/airscout/internal/errors"
)

// CommandRunner is the external process boundary of the scan pipeline.
// Implementations run a shell command and return its decoded standard
// output. Tests inject a FixtureRunner instead of spawning a process.
type CommandRunner interface {
	Run(ctx context.Context, command string) (string, error)
}

// ExecRunner runs scan commands through the system shell.
type ExecRunner struct {
	// Timeout bounds one command invocation. Zero means no bound, which
	// leaves the caller exposed to a hung scan utility.
	Timeout time.Duration
}

// Run executes the command and returns its decoded stdout. A timeout or
// launch failure is returned as a command execution error; this is the
// only error class that aborts a scan.
func (r *ExecRunner) Run(ctx context.Context, command string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return "", apperrors.ErrCommandTimeout(command, ctxErr)
	}
	if err != nil {
		return "", apperrors.ErrCommandFailed(command, err)
	}

	return DecodeOutput(stdout.Bytes()), nil
}

// FixtureRunner returns canned output instead of spawning a process. It
// satisfies the injectable fixture boundary for tests and diagnostics.
type FixtureRunner struct {
	// Output is returned verbatim from Run.
	Output string
	// Err, if set, is returned instead of Output.
	Err error
	// Calls counts Run invocations.
	Calls int
}

// Run implements CommandRunner.
func (r *FixtureRunner) Run(_ context.Context, _ string) (string, error) {
	r.Calls++
	if r.Err != nil {
		return "", r.Err
	}
	return r.Output, nil
}

// DecodeOutput decodes raw scan utility bytes as UTF-8, falling back to
// UTF-16 when the bytes are not valid UTF-8 but look like a UTF-16 stream.
// Undecodable sequences are dropped rather than failing the scan.
func DecodeOutput(raw []byte) string {
	// NUL bytes are valid UTF-8 but never appear in real scan output;
	// their presence signals a UTF-16 stream.
	if utf8.Valid(raw) && !bytes.ContainsRune(raw, 0) {
		return string(raw)
	}

	if looksUTF16(raw) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if decoded, err := decoder.Bytes(raw); err == nil {
			return strings.ToValidUTF8(string(decoded), "")
		}
	}

	return strings.ToValidUTF8(string(raw), "")
}

// looksUTF16 reports whether the bytes carry a UTF-16 BOM or enough NUL
// bytes to suggest UTF-16 encoded ASCII text.
func looksUTF16(raw []byte) bool {
	if len(raw) >= 2 {
		if (raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF) {
			return true
		}
	}
	nulls := bytes.Count(raw, []byte{0})
	return len(raw) > 0 && nulls > len(raw)/4
}
