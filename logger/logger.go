// Package logger is the central log for the emulation. log entries are
// accumulated and can be inspected from the debugger with the LOG command, or
// echoed to an io.Writer as they arrive.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission instances decide whether an entry is allowed into the log
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow can be used by callers that have no more nuanced permission system of
// their own
var Allow = allow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type central struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var logger central

// the log is clipped so that a noisy emulation cannot grow it without limit
const maxEntries = 512

// Log adds an entry. the detail argument can be anything that can be
// sensibly converted to a string, errors and Stringers included
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	logger.crit.Lock()
	defer logger.crit.Unlock()

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	// multi-line details become multiple entries with the same tag
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSpace(l)
		if len(l) == 0 {
			continue
		}
		e := entry{tag: tag, detail: l}
		logger.entries = append(logger.entries, e)
		if logger.echo != nil {
			fmt.Fprintln(logger.echo, e.String())
		}
	}

	if len(logger.entries) > maxEntries {
		logger.entries = logger.entries[len(logger.entries)-maxEntries:]
	}
}

// Logf is Log with a formatted detail string
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// Tail writes the most recent n entries to w. a negative value of n writes
// the entire log
func Tail(w io.Writer, n int) {
	logger.crit.Lock()
	defer logger.crit.Unlock()

	if n < 0 || n > len(logger.entries) {
		n = len(logger.entries)
	}

	for _, e := range logger.entries[len(logger.entries)-n:] {
		fmt.Fprintln(w, e.String())
	}
}

// SetEcho nominates a writer to receive new entries as they are logged. a nil
// writer stops any echoing
func SetEcho(w io.Writer) {
	logger.crit.Lock()
	defer logger.crit.Unlock()
	logger.echo = w
}
