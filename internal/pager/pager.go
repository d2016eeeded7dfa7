// Package pager locates an interactive terminal pager and forwards a
// byte stream to it for display.
//
// Resolution order: $PAGER (split on whitespace, so values like
// "less -R" work), then less, then more. When the destination is not a
// terminal, no pager is installed, or $PAGER is the conventional "cat",
// the stream is copied to the destination unchanged instead. The
// fallback is silent: a process piping this output somewhere gets the
// raw bytes, not an error.
package pager

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
)

// disablePager is the $PAGER value that conventionally means "none".
const disablePager = "cat"

// fallbacks are tried in order when $PAGER is unset or not installed.
var fallbacks = []string{"less", "more"}

// A Pager forwards a stream to an external paging program, degrading to
// a plain copy when no pager can run.
type Pager struct {
	out         io.Writer
	errOut      io.Writer
	interactive bool

	getenv   func(string) string
	lookPath func(string) (string, error)
}

// New returns a Pager displaying on out. A pager program is only used
// when out is a terminal; any other destination gets the plain copy.
func New(out, errOut io.Writer) *Pager {
	p := &Pager{
		out:      out,
		errOut:   errOut,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		p.interactive = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return p
}

// Page forwards everything from r to the resolved pager and blocks until
// the pager exits. Bytes arrive in input order and are never
// transformed. The user quitting the pager before the stream is drained
// counts as normal termination, not an error.
func (p *Pager) Page(ctx context.Context, r io.Reader) error {
	argv := p.command()
	if len(argv) == 0 {
		_, err := io.Copy(p.out, r)
		return err
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = p.out
	cmd.Stderr = p.errOut
	cmd.Env = pagerEnv(cmd.Environ())

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		// The pager vanished between lookup and start; show the
		// document anyway.
		stdin.Close()
		_, cpErr := io.Copy(p.out, r)
		return cpErr
	}

	// The pager owns the terminal now; let it field ^C itself instead
	// of this process dying underneath it.
	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	_, copyErr := io.Copy(stdin, r)
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return err
	}
	if copyErr != nil && !errors.Is(copyErr, syscall.EPIPE) {
		return copyErr
	}
	return nil
}

// command resolves the pager argv. Empty means copy straight through.
func (p *Pager) command() []string {
	if !p.interactive {
		return nil
	}
	if v := p.getenv("PAGER"); v != "" {
		if v == disablePager {
			return nil
		}
		argv := strings.Fields(v)
		if len(argv) > 0 {
			if _, err := p.lookPath(argv[0]); err == nil {
				return argv
			}
			// A $PAGER that is not installed falls through to the
			// defaults rather than failing the display.
		}
	}
	for _, name := range fallbacks {
		if _, err := p.lookPath(name); err == nil {
			return []string{name}
		}
	}
	return nil
}

// pagerEnv fills in the pager defaults git popularized: quit-if-one-screen
// and raw control characters for less, -c for lv. Existing values win.
func pagerEnv(environ []string) []string {
	env := environ
	if !envHas(environ, "LESS") {
		env = append(env, "LESS=FRX")
	}
	if !envHas(environ, "LV") {
		env = append(env, "LV=-c")
	}
	return env
}

func envHas(environ []string, key string) bool {
	for _, kv := range environ {
		if strings.HasPrefix(kv, key+"=") {
			return true
		}
	}
	return false
}
