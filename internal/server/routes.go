package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/historyquest/historyquest/internal/agent"
	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/script"
	"github.com/historyquest/historyquest/internal/store"
)

// registerRoutes mounts the script library and generation API.
func (s *Server) registerRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/scripts", handleListScripts(s.store, s.cfg.Samples))
		r.Post("/scripts", handleSaveScript(s.store))
		r.Get("/scripts/{id}", handleGetScript(s.store))
		r.Delete("/scripts/{id}", handleDeleteScript(s.store))
		r.Get("/scripts/{id}/export", handleExportScript(s.store))
		r.Post("/generate", handleGenerate(s.gen))
		r.Get("/agents", handleListAgents())
	})
}

// library returns saved scripts followed by the bundled samples.
func library(st *store.Store, includeSamples bool) []script.SavedScript {
	docs := st.List()
	if includeSamples {
		docs = append(docs, script.Samples()...)
	}
	return docs
}

// lookup finds a script by id among the samples and the saved library.
func lookup(st *store.Store, id string) (script.SavedScript, bool) {
	if script.IsSample(id) {
		for _, doc := range script.Samples() {
			if doc.ID == id {
				return doc, true
			}
		}
		return script.SavedScript{}, false
	}
	return st.Get(id)
}

func handleListScripts(st *store.Store, includeSamples bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if v := r.URL.Query().Get("samples"); v != "" {
			if parsed, err := strconv.ParseBool(v); err == nil {
				includeSamples = parsed
			}
		}

		age := r.URL.Query().Get("age")
		if age == "" {
			age = script.AgeFilterAll
		}

		docs := script.Filter(library(st, includeSamples), r.URL.Query().Get("q"), age)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(docs)
	}
}

func handleSaveScript(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc script.Script
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if doc.Topic == "" {
			http.Error(w, `{"error":"topic is required"}`, http.StatusBadRequest)
			return
		}

		saved := st.Save(doc)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)
	}
}

func handleGetScript(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := lookup(st, chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, `{"error":"script not found"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}
}

func handleDeleteScript(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if script.IsSample(id) {
			http.Error(w, `{"error":"sample scripts cannot be deleted"}`, http.StatusForbidden)
			return
		}
		if !st.Delete(id) {
			http.Error(w, `{"error":"script not found"}`, http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleExportScript(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := lookup(st, chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, `{"error":"script not found"}`, http.StatusNotFound)
			return
		}

		switch format := r.URL.Query().Get("format"); format {
		case "", "text":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(script.ExportText(doc.Script)))
		case "html":
			page, err := script.ExportHTML(doc.Script)
			if err != nil {
				http.Error(w, `{"error":"export failed"}`, http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(page))
		default:
			http.Error(w, `{"error":"unknown export format: `+format+`"}`, http.StatusBadRequest)
		}
	}
}

func handleGenerate(gen *generator.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generator.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Topic == "" {
			http.Error(w, `{"error":"topic is required"}`, http.StatusBadRequest)
			return
		}

		doc, err := gen.Generate(r.Context(), req)
		if err != nil {
			var genErr *generator.GenerationError
			if errors.As(err, &genErr) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(map[string]string{"error": genErr.Message})
				return
			}
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}
}

func handleListAgents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(agent.Pipeline())
	}
}
