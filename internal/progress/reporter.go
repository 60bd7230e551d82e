// Package progress shows generation status while the agent call is pending.
// The status line rotates through a fixed message list on a periodic tick,
// independent of the pending call, and stops when the call resolves.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// RotateInterval is how often the status message advances.
const RotateInterval = 3 * time.Second

// LoadingMessages are the rotating status lines shown during generation.
var LoadingMessages = []string{
	"Traveling back in time...",
	"Researching ancient archives...",
	"Interviewing historical figures...",
	"Gathering fun facts...",
	"Writing the script...",
	"Adding visual magic...",
	"Crafting quiz questions...",
	"Connecting past to present...",
	"Polishing the final draft...",
}

// Message returns the rotating status line for tick index i.
func Message(i int) string {
	return LoadingMessages[i%len(LoadingMessages)]
}

// Reporter provides feedback while a generation request is in flight.
type Reporter interface {
	Start()
	Finish()
}

// NewReporter returns a TerminalReporter if running interactively, or a
// CIReporter when the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter shows an indeterminate spinner with rotating messages.
type TerminalReporter struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

func (r *TerminalReporter) Start() {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(Message(0)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	r.done = make(chan struct{})

	go func() {
		spin := time.NewTicker(150 * time.Millisecond)
		rotate := time.NewTicker(RotateInterval)
		defer spin.Stop()
		defer rotate.Stop()

		msg := 0
		for {
			select {
			case <-r.done:
				return
			case <-spin.C:
				_ = r.bar.Add(1)
			case <-rotate.C:
				msg++
				r.bar.Describe(Message(msg))
			}
		}
	}()
}

func (r *TerminalReporter) Finish() {
	if r.done != nil {
		close(r.done)
		r.done = nil
	}
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints plain lines suitable for CI logs.
type CIReporter struct{}

func (r *CIReporter) Start() {
	fmt.Fprintln(os.Stderr, "Generating script, this may take a minute or two...")
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(os.Stderr, "Generation finished")
}
