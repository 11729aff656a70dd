// Package probe answers questions about the host's Tcl/Tk installation by
// asking a live interpreter. Each query runs one short-lived tclsh session;
// the interpreter's own answer is authoritative, there is no fallback to
// guessing paths.
package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
	"github.com/pkgfreeze/pkgfreeze/internal/utils"
)

// errEmptyResult indicates the interpreter session exited without printing
// a result
var errEmptyResult = errors.New("interpreter returned no output")

// Introspection expressions evaluated inside the interpreter
const (
	exprLibraryRoot = "info library"
	exprTclVersion  = "info tclversion"
	exprTkVersion   = "package require Tk"
)

// Dependency for testing
var execCommand = exec.CommandContext

// TclshProbe implements domain.InterpreterProbe by driving a tclsh
// executable over stdin.
type TclshProbe struct {
	tclsh   string
	timeout time.Duration
	logger  *utils.Logger
}

// Options contains options for creating a TclshProbe
type Options struct {
	Tclsh   string
	Timeout time.Duration
	Logger  *utils.Logger
}

// New creates a new TclshProbe
func New(opts Options) *TclshProbe {
	if opts.Tclsh == "" {
		opts.Tclsh = "tclsh"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &TclshProbe{
		tclsh:   opts.Tclsh,
		timeout: opts.Timeout,
		logger:  logger.WithComponent("probe"),
	}
}

// LibraryRoot returns the value of "info library"
func (p *TclshProbe) LibraryRoot(ctx context.Context) (string, error) {
	return p.eval(ctx, exprLibraryRoot)
}

// TclVersion returns the dotted Tcl version
func (p *TclshProbe) TclVersion(ctx context.Context) (string, error) {
	return p.eval(ctx, exprTclVersion)
}

// TkVersion returns the dotted Tk version
func (p *TclshProbe) TkVersion(ctx context.Context) (string, error) {
	return p.eval(ctx, exprTkVersion)
}

// eval runs one tclsh session, evaluates a single expression and returns
// its printed result. The session is never reused.
func (p *TclshProbe) eval(ctx context.Context, expr string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	script := "puts [" + expr + "]; exit\n"

	cmd := execCommand(ctx, p.tclsh)
	cmd.Stdin = strings.NewReader(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	p.logger.Debug().Str("expr", expr).Str("tclsh", p.tclsh).Msg("running interpreter probe")

	if err := cmd.Run(); err != nil {
		return "", domain.NewProbeError(expr, strings.TrimSpace(stderr.String()), err)
	}

	out := lastLine(stdout.String())
	if out == "" {
		return "", domain.NewProbeError(expr, strings.TrimSpace(stderr.String()), errEmptyResult)
	}
	return out, nil
}

// lastLine returns the last non-empty line of s. Interpreter startup may
// print warnings before the result.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
