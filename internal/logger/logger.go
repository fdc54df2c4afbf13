package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Logger is the logging capability every component of devsetup receives.
// It is an interface rather than a set of package-level functions so tests
// can inject a recording implementation and assert on output without
// touching the real console streams.
//
// Each method behaves like fmt.Printf and emits exactly one status line
// tagged with its level:
//   - Success: an operation completed (green)
//   - Info: neutral progress information (cyan)
//   - Warn: something was skipped or needs user attention (bright magenta)
//   - Error: an operation failed (red)
//   - Debug: verbose diagnostics, silent unless debug logging is enabled
type Logger interface {
	Success(format string, a ...any)
	Info(format string, a ...any)
	Warn(format string, a ...any)
	Error(format string, a ...any)
	Debug(format string, a ...any)
}

// Console is the production Logger. It writes colorized, level-tagged lines
// to a single output stream using fatih/color.
//
// The color palette: green for success (pleasant confirmation), cyan for
// neutral info, bright magenta for warnings (stands out without alarming),
// red for errors (immediate attention), and plain cyan for debug.
type Console struct {
	success func(w io.Writer, format string, a ...any)
	info    func(w io.Writer, format string, a ...any)
	warn    func(w io.Writer, format string, a ...any)
	err     func(w io.Writer, format string, a ...any)
	debug   func(w io.Writer, format string, a ...any)

	out         io.Writer
	debugEnable bool
}

// New returns a Console logger writing to w. Debug lines are printed only
// when enableDebug is true; otherwise Debug is a no-op.
func New(w io.Writer, enableDebug bool) *Console {
	return &Console{
		success:     color.New(color.FgGreen).FprintfFunc(),
		info:        color.New(color.FgCyan).FprintfFunc(),
		warn:        color.New(color.FgHiMagenta).FprintfFunc(),
		err:         color.New(color.FgRed).FprintfFunc(),
		debug:       color.New(color.FgCyan).FprintfFunc(),
		out:         w,
		debugEnable: enableDebug,
	}
}

// Default returns a Console logger bound to standard output.
func Default(enableDebug bool) *Console {
	return New(os.Stdout, enableDebug)
}

// Success logs a green [OK] line.
func (c *Console) Success(format string, a ...any) {
	c.success(c.out, "[OK] "+format+"\n", a...)
}

// Info logs a cyan [INFO] line.
func (c *Console) Info(format string, a ...any) {
	c.info(c.out, "[INFO] "+format+"\n", a...)
}

// Warn logs a bright magenta [WARN] line.
func (c *Console) Warn(format string, a ...any) {
	c.warn(c.out, "[WARN] "+format+"\n", a...)
}

// Error logs a red [ERROR] line.
func (c *Console) Error(format string, a ...any) {
	c.err(c.out, "[ERROR] "+format+"\n", a...)
}

// Debug logs a cyan [DEBUG] line when debug logging is enabled, otherwise
// does nothing.
func (c *Console) Debug(format string, a ...any) {
	if !c.debugEnable {
		return
	}
	c.debug(c.out, "[DEBUG] "+format+"\n", a...)
}
