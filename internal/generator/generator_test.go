package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/historyquest/historyquest/internal/agent"
)

// stubInvoker records the last invocation and replays a canned outcome.
type stubInvoker struct {
	result *agent.InvokeResult
	err    error

	lastMessage string
	lastAgentID string
}

func (s *stubInvoker) Invoke(_ context.Context, message, agentID string) (*agent.InvokeResult, error) {
	s.lastMessage = message
	s.lastAgentID = agentID
	return s.result, s.err
}

func TestBuildMessage(t *testing.T) {
	req := Request{Topic: "Ancient Egypt", AgeRange: "6-10", VideoLength: "10 min", StyleTags: []string{"Story-driven", "Fun Facts"}, Focus: "daily life"}
	got := BuildMessage(req)
	want := `Create a 10 min educational history video script about "Ancient Egypt" for ages 6-10. Style preferences: Story-driven, Fun Facts. Specific focus: daily life`
	if got != want {
		t.Errorf("BuildMessage:\n got %q\nwant %q", got, want)
	}
}

func TestBuildMessageDefaults(t *testing.T) {
	got := BuildMessage(Request{Topic: "Rome", AgeRange: "Mixed", VideoLength: "5 min"})
	if !strings.Contains(got, "Style preferences: General.") {
		t.Errorf("empty styles must render as General: %q", got)
	}
	if strings.Contains(got, "Specific focus") {
		t.Errorf("empty focus must be omitted: %q", got)
	}
}

func TestGenerateSuccess(t *testing.T) {
	stub := &stubInvoker{result: &agent.InvokeResult{
		Success:  true,
		Response: &agent.InvokeResponse{Result: map[string]any{"script_title": "X"}},
	}}
	g := New(stub)

	s, err := g.Generate(context.Background(), Request{Topic: "T", AgeRange: "6-10", VideoLength: "10 min"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if s.ScriptTitle != "X" {
		t.Errorf("title = %q, want X", s.ScriptTitle)
	}
	if s.Topic != "T" || s.TargetAgeRange != "6-10" || s.VideoLength != "10 min" {
		t.Errorf("request fallbacks not applied: %+v", s)
	}
	if s.Scenes == nil || len(s.Scenes) != 0 {
		t.Errorf("scenes must normalize to empty: %v", s.Scenes)
	}
	if stub.lastAgentID != agent.ManagerAgentID {
		t.Errorf("invoked agent %s, want manager", stub.lastAgentID)
	}
}

func TestGenerateAgentError(t *testing.T) {
	g := New(&stubInvoker{result: &agent.InvokeResult{Success: false, Error: "boom"}})

	_, err := g.Generate(context.Background(), Request{Topic: "T"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error type = %T, want *GenerationError", err)
	}
	if genErr.Message != "boom" {
		t.Errorf("message = %q, want boom", genErr.Message)
	}
}

func TestGenerateStatusMessage(t *testing.T) {
	g := New(&stubInvoker{result: &agent.InvokeResult{
		Success:  false,
		Response: &agent.InvokeResponse{Message: "agents are busy"},
	}})

	_, err := g.Generate(context.Background(), Request{})
	if err == nil || err.Error() != "agents are busy" {
		t.Errorf("err = %v, want status message", err)
	}
}

func TestGenerateMissingResult(t *testing.T) {
	// Success without a nested result payload is still a failure.
	g := New(&stubInvoker{result: &agent.InvokeResult{Success: true, Response: &agent.InvokeResponse{}}})

	_, err := g.Generate(context.Background(), Request{})
	if err == nil || err.Error() != errGenerationFailed {
		t.Errorf("err = %v, want generic fallback", err)
	}
}

func TestGenerateTransportFault(t *testing.T) {
	g := New(&stubInvoker{err: errors.New("timeout")})

	_, err := g.Generate(context.Background(), Request{})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error type = %T, want *GenerationError", err)
	}
	if genErr.Message != "timeout" {
		t.Errorf("message = %q, want timeout", genErr.Message)
	}
}
