package crash

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"runtime"
	"runtime/debug"
	"time"
)

// MainFunc is the shape of an entry-point function the Catcher can wrap.
type MainFunc func(args []string) error

// Fault is the terminal error returned by a wrapped function after crash
// handling has run. The top-level main is expected to translate it into a
// process exit; the wrapper itself never terminates the process.
type Fault struct {
	// Value is the recovered panic value, or the error returned by the
	// wrapped function.
	Value any

	// ReportPath is the resolved path the report was written to. Empty
	// when writing the report itself failed.
	ReportPath string
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.ReportPath == "" {
		return fmt.Sprintf("crash: %v", f.Value)
	}
	return fmt.Sprintf("crash: %v (report: %s)", f.Value, f.ReportPath)
}

// Unwrap exposes the wrapped function's error, when the fault came from
// an error return rather than a panic.
func (f *Fault) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}

// ExitCode returns the process exit status a crash maps to.
func (f *Fault) ExitCode() int { return 1 }

// Options configures a Catcher. Path, Message and Title are required; the
// rest default as documented on each field.
type Options struct {
	// Path is the desired report location. The actual path is resolved at
	// crash time, so collision avoidance reflects the file's existence
	// then, not at construction.
	Path string

	// Message is printed to stderr when a crash is caught. It may contain
	// the {filename} placeholder, rendered with the resolved path.
	Message string

	// Title is the first line of the report. Supports {filename}.
	Title string

	// Postamble, when non-empty, is printed to stderr after the report is
	// written. Supports {filename}.
	Postamble string

	// Overwrite reuses (and truncates) an existing file at Path. When
	// false the filename is incremented until an unused one is found.
	Overwrite bool

	// Extra fields are embedded in the report's crash-data block, keyed
	// alphabetically.
	Extra map[string]any

	// Registry supplies diagnostic data and callbacks. Defaults to the
	// process-wide DefaultRegistry.
	Registry *Registry

	// Stdout and Stderr receive callback messages and crash messages
	// respectively. Default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives operational events (report write failures, callback
	// panics). Defaults to a discard logger.
	Logger *slog.Logger
}

// Catcher wraps entry-point functions per its Options.
type Catcher struct {
	opts     Options
	registry *Registry
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
}

// New creates a Catcher, filling in option defaults.
func New(opts Options) *Catcher {
	c := &Catcher{
		opts:     opts,
		registry: opts.Registry,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		logger:   opts.Logger,
	}
	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	if c.stderr == nil {
		c.stderr = os.Stderr
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Wrap returns fn decorated with crash handling. On a nil-error return the
// result passes through unchanged with no side effects. On a recovered
// panic or a non-nil error the full crash sequence runs: messages to
// stderr, callbacks in registration order, report written to the resolved
// path, and a *Fault returned for main to translate into exit status 1.
func (c *Catcher) Wrap(fn MainFunc) MainFunc {
	name := funcName(fn)

	return func(args []string) error {
		caller := callerName()
		started := time.Now()

		var fnErr error
		var panicked bool
		var panicValue any
		var stack string

		func() {
			defer func() {
				if r := recover(); r != nil {
					panicked = true
					panicValue = r
					stack = string(debug.Stack())
				}
			}()
			fnErr = fn(args)
		}()

		if !panicked && fnErr == nil {
			return nil
		}

		elapsed := time.Since(started)

		var value any
		if panicked {
			value = panicValue
		} else {
			value = fnErr
			// No panic stack exists for an error return; the stack at the
			// handling boundary still locates the wrapped call site.
			stack = string(debug.Stack())
		}

		return c.handleCrash(crashContext{
			value:    value,
			stack:    stack,
			funcName: name,
			caller:   caller,
			started:  started,
			elapsed:  elapsed,
			args:     args,
		})
	}
}

// crashContext carries everything captured at the crash boundary into the
// handling sequence.
type crashContext struct {
	value    any
	stack    string
	funcName string
	caller   string
	started  time.Time
	elapsed  time.Duration
	args     []string
}

func (c *Catcher) handleCrash(cc crashContext) *Fault {
	// Resolve only now so overwrite avoidance sees the file's existence at
	// crash time.
	resolved := ResolvePath(c.opts.Path, c.opts.Overwrite)
	subs := map[string]string{"filename": resolved}

	message := Render(c.opts.Message, subs)
	title := Render(c.opts.Title, subs)
	postamble := Render(c.opts.Postamble, subs)

	fmt.Fprintln(c.stderr, message)
	fmt.Fprintf(c.stderr, "%v\n", cc.value)

	cbErrs := c.runCallbacks()

	report := NewReport(title)
	report.FuncName = cc.funcName
	report.Caller = cc.caller
	report.Started = cc.started
	report.Elapsed = cc.elapsed
	report.Args = cc.args
	report.Data = c.registry.Data()
	report.Extra = c.opts.Extra
	report.CallbackErrors = cbErrs
	report.FaultMessage = fmt.Sprintf("%v", cc.value)
	report.Stack = cc.stack

	// Single unscoped write: no atomic rename, no fsync. A crash while
	// writing can leave a partial file.
	if err := os.WriteFile(resolved, report.Bytes(), 0o600); err != nil {
		c.logger.Error("failed to write crash report", "path", resolved, "error", err)
		fmt.Fprintf(c.stderr, "failed to write crash report to %q: %v\n", resolved, err)
		return &Fault{Value: cc.value}
	}

	fmt.Fprintf(c.stderr, "Crash report written to %q\n", resolved)
	if postamble != "" {
		fmt.Fprintln(c.stderr, postamble)
	}

	return &Fault{Value: cc.value, ReportPath: resolved}
}

// runCallbacks invokes registered callbacks in registration order,
// printing each attached message to stdout first. A panicking callback is
// recovered and recorded so the remaining callbacks and the report still
// run (best-effort continue-on-error).
func (c *Catcher) runCallbacks() []string {
	var errs []string
	for _, cb := range c.registry.Callbacks() {
		if cb.Message != "" {
			fmt.Fprintln(c.stdout, cb.Message)
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logger.Error("crash callback panicked", "id", cb.ID, "panic", r)
					errs = append(errs, fmt.Sprintf("callback %d: %v", cb.ID, r))
				}
			}()
			cb.Fn()
		}()
	}
	return errs
}

// funcName resolves the wrapped function's symbol name for the report,
// preserving introspection across the wrapping.
func funcName(fn MainFunc) string {
	if fn == nil {
		return "<nil>"
	}
	pc := reflect.ValueOf(fn).Pointer()
	if f := runtime.FuncForPC(pc); f != nil {
		return f.Name()
	}
	return "<unknown>"
}

// callerName identifies the function that invoked the wrapped entry point.
func callerName() string {
	// Skip callerName and the wrapper closure itself.
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "<unknown>"
	}
	if f := runtime.FuncForPC(pc); f != nil {
		return f.Name()
	}
	return "<unknown>"
}
