package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/swcstudio/domainscan/internal/progress"
)

// Printer renders progress events as log lines. It implements
// progress.Subscriber and is safe for events arriving from concurrent scans.
type Printer struct {
	mu      sync.Mutex
	w       io.Writer
	noColor bool
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, noColor bool) *Printer {
	return &Printer{w: w, noColor: noColor}
}

// Notify implements progress.Subscriber
func (p *Printer) Notify(ev progress.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefix := "[*]"
	switch {
	case ev.Status == progress.StatusCompleted:
		prefix = "[+]"
	case ev.Status == progress.StatusError:
		prefix = "[!]"
	case strings.HasPrefix(ev.Message, "warning:"):
		prefix = "[!]"
	}
	if !p.noColor {
		switch prefix {
		case "[+]":
			prefix = "\033[32m[+]\033[0m"
		case "[!]":
			prefix = "\033[33m[!]\033[0m"
		}
	}

	fmt.Fprintf(p.w, "%s %s (%d%%) %s\n", prefix, ev.Hostname, ev.Progress, ev.Message)
}
