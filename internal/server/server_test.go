package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/historyquest/historyquest/internal/agent"
	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/script"
	"github.com/historyquest/historyquest/internal/store"
)

type stubInvoker struct {
	result *agent.InvokeResult
	err    error
}

func (s *stubInvoker) Invoke(ctx context.Context, message, agentID string) (*agent.InvokeResult, error) {
	return s.result, s.err
}

func newTestServer(t *testing.T, inv agent.Invoker) *Server {
	t.Helper()
	if inv == nil {
		inv = &stubInvoker{result: &agent.InvokeResult{Success: true, Response: &agent.InvokeResponse{Result: map[string]any{}}}}
	}
	st := store.Open(t.TempDir())
	return New(Config{Port: 0, AllowAll: true, Samples: true}, st, generator.New(inv))
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow-all CORS origin, got %q", got)
	}
}

func TestListScriptsIncludesSamples(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.store.Save(script.Script{ScriptTitle: "The Maya", Topic: "Maya civilization", TargetAgeRange: "11-14"})

	req := httptest.NewRequest("GET", "/api/scripts", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var docs []script.SavedScript
	if err := json.Unmarshal(w.Body.Bytes(), &docs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(docs) != 1+len(script.Samples()) {
		t.Fatalf("expected saved script plus samples, got %d entries", len(docs))
	}
	if docs[0].Topic != "Maya civilization" {
		t.Errorf("expected saved scripts before samples, got %q first", docs[0].Topic)
	}
}

func TestListScriptsFilters(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.store.Save(script.Script{ScriptTitle: "The Maya", Topic: "Maya civilization", TargetAgeRange: "11-14"})
	srv.store.Save(script.Script{ScriptTitle: "Vikings", Topic: "Viking voyages", TargetAgeRange: "6-10"})

	req := httptest.NewRequest("GET", "/api/scripts?q=maya&age=11-14&samples=false", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var docs []script.SavedScript
	if err := json.Unmarshal(w.Body.Bytes(), &docs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(docs) != 1 || docs[0].Topic != "Maya civilization" {
		t.Fatalf("expected only the Maya script, got %+v", docs)
	}
}

func TestSaveAndGetScript(t *testing.T) {
	srv := newTestServer(t, nil)

	body, _ := json.Marshal(script.Script{ScriptTitle: "Rome", Topic: "Roman Empire"})
	req := httptest.NewRequest("POST", "/api/scripts", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var saved script.SavedScript
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected assigned id")
	}

	req = httptest.NewRequest("GET", "/api/scripts/"+saved.ID, nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got script.SavedScript
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Topic != "Roman Empire" {
		t.Errorf("expected stored topic back, got %q", got.Topic)
	}
}

func TestSaveScriptRequiresTopic(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("POST", "/api/scripts", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetSampleScript(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("GET", "/api/scripts/"+script.Samples()[0].ID, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for sample, got %d", w.Code)
	}
}

func TestDeleteScript(t *testing.T) {
	srv := newTestServer(t, nil)
	saved := srv.store.Save(script.Script{Topic: "Aztecs"})

	req := httptest.NewRequest("DELETE", "/api/scripts/"+saved.ID, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if srv.store.Len() != 0 {
		t.Error("expected script removed from store")
	}
}

func TestDeleteSampleForbidden(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("DELETE", "/api/scripts/"+script.Samples()[0].ID, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for sample delete, got %d", w.Code)
	}
}

func TestDeleteUnknownScript(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("DELETE", "/api/scripts/nope", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGenerateSuccess(t *testing.T) {
	inv := &stubInvoker{result: &agent.InvokeResult{
		Success:  true,
		Response: &agent.InvokeResponse{Result: map[string]any{"script_title": "Great Wall Secrets"}},
	}}
	srv := newTestServer(t, inv)

	body := `{"topic":"Great Wall","age_range":"6-10","video_length":"5 min"}`
	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var doc script.Script
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.ScriptTitle != "Great Wall Secrets" {
		t.Errorf("expected generated title, got %q", doc.ScriptTitle)
	}
	if doc.Scenes == nil {
		t.Error("expected normalized scenes array, got null")
	}
}

func TestGenerateFailure(t *testing.T) {
	inv := &stubInvoker{result: &agent.InvokeResult{Success: false, Error: "research agent unavailable"}}
	srv := newTestServer(t, inv)

	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(`{"topic":"Rome"}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "research agent unavailable" {
		t.Errorf("expected agent error message, got %q", body["error"])
	}
}

func TestGenerateRequiresTopic(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExportFormats(t *testing.T) {
	srv := newTestServer(t, nil)
	saved := srv.store.Save(script.Script{ScriptTitle: "Pompeii", Topic: "Pompeii"})

	req := httptest.NewRequest("GET", "/api/scripts/"+saved.ID+"/export", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("text export: expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "# Pompeii") {
		t.Errorf("expected text export to open with title heading, got %q", w.Body.String())
	}

	req = httptest.NewRequest("GET", "/api/scripts/"+saved.ID+"/export?format=html", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("html export: expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}

	req = httptest.NewRequest("GET", "/api/scripts/"+saved.ID+"/export?format=pdf", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown format: expected 400, got %d", w.Code)
	}
}

func TestListAgents(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("GET", "/api/agents", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var agents []agent.Info
	if err := json.Unmarshal(w.Body.Bytes(), &agents); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(agents) != 3 {
		t.Fatalf("expected 3 pipeline agents, got %d", len(agents))
	}
}

func TestGenerateSocket(t *testing.T) {
	inv := &stubInvoker{result: &agent.InvokeResult{
		Success:  true,
		Response: &agent.InvokeResponse{Result: map[string]any{"script_title": "Socket Script"}},
	}}
	srv := newTestServer(t, inv)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/generate"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"topic": "Rome"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Expect at least one status frame, then the script.
	sawStatus := false
	for {
		var msg socketMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		switch msg.Type {
		case "status":
			sawStatus = true
		case "script":
			if msg.Script == nil || msg.Script.ScriptTitle != "Socket Script" {
				t.Fatalf("unexpected script frame: %+v", msg)
			}
			if !sawStatus {
				t.Error("expected a status frame before the script")
			}
			return
		case "error":
			t.Fatalf("unexpected error frame: %s", msg.Message)
		}
	}
}
