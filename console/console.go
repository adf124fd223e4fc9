package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Console is the sink for user-facing run output: step announcements,
// progress indication and free-form lines. It is distinct from the
// structured logger, which records diagnostics.
type Console interface {
	// Println writes one line of output.
	Println(args ...interface{})
	// Printf writes formatted output.
	Printf(format string, args ...interface{})
	// Rule writes a titled separator announcing a new section of the run.
	Rule(title string)
	// Busy runs scope while showing a transient busy indicator. The
	// indicator is cleared on every exit path, including a scope error.
	Busy(label string, scope func() error) error
}

// Terminal writes run output to an io.Writer. The busy indicator is only
// animated when enabled; disabled it degrades to a plain announcement,
// which keeps test and CI output stable.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	animate bool
}

// NewTerminal creates a console writing to out. animate controls whether
// Busy renders a spinner or a plain line.
func NewTerminal(out io.Writer, animate bool) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{out: out, animate: animate}
}

func (t *Terminal) Println(args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, args...)
}

func (t *Terminal) Printf(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) Rule(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "===> %s\n%s\n", title, strings.Repeat("-", len(title)+5))
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

func (t *Terminal) Busy(label string, scope func() error) error {
	if !t.animate {
		t.Printf("%s ...\n", label)
		return scope()
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		frame := 0
		for {
			select {
			case <-done:
				// Clear the spinner line before handing the terminal back.
				t.Printf("\r%s\r", strings.Repeat(" ", len(label)+2))
				return
			case <-ticker.C:
				t.Printf("\r%s %s", label, spinnerFrames[frame%len(spinnerFrames)])
				frame++
			}
		}
	}()

	defer func() {
		close(done)
		<-finished
	}()
	return scope()
}
