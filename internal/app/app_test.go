package app

import (
	"context"
	"sync"
	"testing"

	"github.com/historyquest/historyquest/internal/agent"
	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/script"
	"github.com/historyquest/historyquest/internal/store"
)

// scriptedInvoker replays one outcome per call, blocking on an optional gate
// so tests can overlap requests.
type scriptedInvoker struct {
	mu       sync.Mutex
	results  []*agent.InvokeResult
	gate     chan struct{}
	received []string
}

func (s *scriptedInvoker) Invoke(_ context.Context, message, _ string) (*agent.InvokeResult, error) {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, message)
	r := s.results[0]
	if len(s.results) > 1 {
		s.results = s.results[1:]
	}
	return r, nil
}

func okResult(title string) *agent.InvokeResult {
	return &agent.InvokeResult{
		Success:  true,
		Response: &agent.InvokeResponse{Result: map[string]any{"script_title": title}},
	}
}

func newTestApp(t *testing.T, inv agent.Invoker) *App {
	t.Helper()
	return New(store.Open(t.TempDir()), generator.New(inv))
}

func TestNavigateClearsError(t *testing.T) {
	a := newTestApp(t, &scriptedInvoker{results: []*agent.InvokeResult{{Success: false, Error: "boom"}}})

	a.Navigate(ScreenNewScript)
	if err := a.Generate(context.Background(), generator.Request{Topic: "T"}); err == nil {
		t.Fatal("expected generation error")
	}
	if a.Err() != "boom" {
		t.Fatalf("err = %q, want boom", a.Err())
	}
	// Failure keeps the user on the form.
	if a.Screen() != ScreenNewScript {
		t.Errorf("screen = %s, want new-script", a.Screen())
	}

	a.Navigate(ScreenDashboard)
	if a.Err() != "" {
		t.Error("navigation must clear the surfaced error")
	}
}

func TestGenerateMovesToViewer(t *testing.T) {
	a := newTestApp(t, &scriptedInvoker{results: []*agent.InvokeResult{okResult("Generated")}})

	if err := a.Generate(context.Background(), generator.Request{Topic: "T", AgeRange: "6-10", VideoLength: "10 min"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Screen() != ScreenViewer {
		t.Errorf("screen = %s, want viewer", a.Screen())
	}
	cur := a.Current()
	if cur == nil || cur.ScriptTitle != "Generated" {
		t.Errorf("current = %+v", cur)
	}
	if a.Generating() {
		t.Error("generating flag must clear on completion")
	}
}

func TestSaveAssignsIdentityOnce(t *testing.T) {
	a := newTestApp(t, &scriptedInvoker{results: []*agent.InvokeResult{okResult("To Save")}})

	if _, ok := a.Save(); ok {
		t.Error("save with no current script must be a no-op")
	}

	if err := a.Generate(context.Background(), generator.Request{Topic: "T"}); err != nil {
		t.Fatal(err)
	}
	saved, ok := a.Save()
	if !ok || saved.ID == "" {
		t.Fatalf("save failed: %+v", saved)
	}

	listed := a.List("", script.AgeFilterAll)
	if len(listed) != 1 || listed[0].ID != saved.ID {
		t.Errorf("list = %+v", listed)
	}
}

func TestDeleteIgnoresSamples(t *testing.T) {
	a := newTestApp(t, &scriptedInvoker{results: []*agent.InvokeResult{okResult("X")}})
	a.SetShowSamples(true)

	if a.Delete("sample-1") {
		t.Error("samples must not be deletable")
	}
	listed := a.List("", script.AgeFilterAll)
	if len(listed) != 2 {
		t.Fatalf("expected both samples listed, got %d", len(listed))
	}
	// Saved scripts come before samples.
	if err := a.Generate(context.Background(), generator.Request{Topic: "T"}); err != nil {
		t.Fatal(err)
	}
	saved, _ := a.Save()
	listed = a.List("", script.AgeFilterAll)
	if listed[0].ID != saved.ID {
		t.Errorf("saved script must list before samples: %v", listed[0].ID)
	}

	if !a.Delete(saved.ID) {
		t.Error("deleting a saved script must succeed")
	}
}

func TestViewSample(t *testing.T) {
	a := newTestApp(t, &scriptedInvoker{results: []*agent.InvokeResult{okResult("X")}})
	if !a.View("sample-2") {
		t.Fatal("viewing a sample must succeed")
	}
	if cur := a.Current(); cur == nil || cur.Topic != "The Space Race" {
		t.Errorf("current = %+v", cur)
	}
	if a.View("missing") {
		t.Error("viewing an unknown id must fail")
	}
}

func TestRegenerateReusesParameters(t *testing.T) {
	inv := &scriptedInvoker{results: []*agent.InvokeResult{okResult("First"), okResult("Second")}}
	a := newTestApp(t, inv)

	req := generator.Request{Topic: "Vikings", AgeRange: "11-14", VideoLength: "15 min", StyleTags: []string{"Fun Facts"}}
	if err := a.Generate(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if err := a.Regenerate(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(inv.received) != 2 {
		t.Fatalf("invocations = %d, want 2", len(inv.received))
	}
	if inv.received[0] != inv.received[1] {
		t.Errorf("regenerate must reuse the original parameters:\n%s\n%s", inv.received[0], inv.received[1])
	}
	if cur := a.Current(); cur == nil || cur.ScriptTitle != "Second" {
		t.Errorf("current = %+v, want Second", cur)
	}
}

func TestLastResponseWins(t *testing.T) {
	gate := make(chan struct{})
	inv := &scriptedInvoker{results: []*agent.InvokeResult{okResult("Stale"), okResult("Fresh")}, gate: gate}
	a := newTestApp(t, inv)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.Generate(context.Background(), generator.Request{Topic: "first"})
	}()
	go func() {
		defer wg.Done()
		a.Generate(context.Background(), generator.Request{Topic: "second"})
	}()

	close(gate)
	wg.Wait()

	// Whichever request resolved last owns the state; the superseded one
	// must not have corrupted it.
	cur := a.Current()
	if cur == nil || (cur.ScriptTitle != "Stale" && cur.ScriptTitle != "Fresh") {
		t.Errorf("current = %+v", cur)
	}
	if a.Generating() {
		t.Error("generating flag left set after all requests resolved")
	}
}
