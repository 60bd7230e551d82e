// Package app owns the application state shared by every surface: the
// current screen, the saved-script collection, the transient generated
// script, and the generation status. All mutation goes through the defined
// operations so the core stays testable without any UI harness.
package app

import (
	"context"
	"sync"

	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/script"
	"github.com/historyquest/historyquest/internal/store"
)

// Screen is the navigation state. There is no history stack; back from the
// viewer always returns to the dashboard.
type Screen string

const (
	ScreenDashboard Screen = "dashboard"
	ScreenNewScript Screen = "new-script"
	ScreenViewer    Screen = "script-viewer"
)

// App is the top-level controller.
type App struct {
	store *store.Store
	gen   *generator.Generator

	mu          sync.Mutex
	screen      Screen
	current     *script.Script
	lastRequest generator.Request
	generating  bool
	genSeq      int
	errMsg      string
	showSamples bool
}

// New creates an App on the given store and generator, starting on the
// dashboard.
func New(st *store.Store, gen *generator.Generator) *App {
	return &App{store: st, gen: gen, screen: ScreenDashboard}
}

// Screen returns the current screen.
func (a *App) Screen() Screen {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.screen
}

// Navigate switches screens and clears any surfaced generation error.
func (a *App) Navigate(s Screen) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screen = s
	a.errMsg = ""
}

// Err returns the surfaced generation error message, empty when none.
func (a *App) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}

// Generating reports whether a generation request is outstanding.
func (a *App) Generating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generating
}

// SetShowSamples toggles the built-in sample scripts on dashboard listings.
func (a *App) SetShowSamples(show bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showSamples = show
}

// List returns the filtered dashboard listing: saved scripts newest first,
// followed by the samples when enabled.
func (a *App) List(query, ageRange string) []script.SavedScript {
	a.mu.Lock()
	samples := a.showSamples
	a.mu.Unlock()

	scripts := a.store.List()
	if samples {
		scripts = append(scripts, script.Samples()...)
	}
	return script.Filter(scripts, query, ageRange)
}

// Current returns the script shown in the viewer, nil when none.
func (a *App) Current() *script.Script {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	c := *a.current
	return &c
}

// Generate runs one generation round trip and, on success, moves to the
// viewer with the new script. On failure the error is surfaced and the
// screen stays put. If a second request is issued while one is outstanding
// the last response wins; a resolved call whose request has been superseded
// is dropped without touching shared state.
func (a *App) Generate(ctx context.Context, req generator.Request) error {
	a.mu.Lock()
	a.generating = true
	a.errMsg = ""
	a.genSeq++
	seq := a.genSeq
	a.lastRequest = req
	a.mu.Unlock()

	s, err := a.gen.Generate(ctx, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if seq != a.genSeq {
		return err // superseded; state belongs to the newer request
	}
	a.generating = false

	if err != nil {
		a.errMsg = err.Error()
		return err
	}
	a.current = &s
	a.screen = ScreenViewer
	return nil
}

// Regenerate reruns generation with the viewed script's parameters. It is a
// fresh Generate call; an empty focus note is used, matching the original
// request shape only where the script still carries it.
func (a *App) Regenerate(ctx context.Context) error {
	a.mu.Lock()
	cur := a.current
	if cur == nil {
		a.mu.Unlock()
		return nil
	}
	req := generator.Request{
		Topic:       cur.Topic,
		AgeRange:    cur.TargetAgeRange,
		VideoLength: cur.VideoLength,
		StyleTags:   cur.StyleTags,
	}
	a.mu.Unlock()

	return a.Generate(ctx, req)
}

// View opens a saved script in the viewer.
func (a *App) View(id string) bool {
	var found *script.Script
	if script.IsSample(id) {
		for _, s := range script.Samples() {
			if s.ID == id {
				sc := s.Script
				found = &sc
				break
			}
		}
	} else if s, ok := a.store.Get(id); ok {
		sc := s.Script
		found = &sc
	}
	if found == nil {
		return false
	}

	a.mu.Lock()
	a.current = found
	a.screen = ScreenViewer
	a.errMsg = ""
	a.mu.Unlock()
	return true
}

// Save persists the viewed script, assigning its identity. Saving with no
// script in the viewer is a no-op.
func (a *App) Save() (script.SavedScript, bool) {
	a.mu.Lock()
	cur := a.current
	a.mu.Unlock()
	if cur == nil {
		return script.SavedScript{}, false
	}
	return a.store.Save(*cur), true
}

// Delete removes a saved script by id. Samples are not deletable.
func (a *App) Delete(id string) bool {
	if script.IsSample(id) {
		return false
	}
	return a.store.Delete(id)
}
