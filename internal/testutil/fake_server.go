package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// FakeTaskServer is an in-process REST server exposing a /tasks collection
// the way a json-server style backend does. Records are stored as raw JSON
// objects so tests can seed loosely typed data (numeric ids, string booleans).
type FakeTaskServer struct {
	*httptest.Server
	records  []map[string]any
	requests []string
	mu       sync.Mutex
	failCode int
}

// NewFakeTaskServer starts a FakeTaskServer that is closed when the test ends.
func NewFakeTaskServer(t testing.TB, seed ...map[string]any) *FakeTaskServer {
	t.Helper()
	s := &FakeTaskServer{records: append([]map[string]any(nil), seed...)}

	r := mux.NewRouter()
	r.Use(s.recordRequest)
	r.HandleFunc("/tasks", s.list).Methods(http.MethodGet)
	r.HandleFunc("/tasks", s.create).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{id}", s.get).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{id}", s.update).Methods(http.MethodPut)
	r.HandleFunc("/tasks/{id}", s.remove).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// FailWith makes every following request answer with the given status code.
// Zero restores normal behavior.
func (s *FakeTaskServer) FailWith(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCode = code
}

// Records returns a copy of the stored records in order.
func (s *FakeTaskServer) Records() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.records))
	for i, rec := range s.records {
		out[i] = copyRecord(rec)
	}
	return out
}

// Requests returns the "METHOD /path" lines of all requests received so far.
func (s *FakeTaskServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *FakeTaskServer) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		code := s.failCode
		s.mu.Unlock()
		if code != 0 {
			http.Error(w, http.StatusText(code), code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *FakeTaskServer) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Records())
}

func (s *FakeTaskServer) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(mux.Vars(r)["id"])
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, copyRecord(s.records[idx]))
}

func (s *FakeTaskServer) create(w http.ResponseWriter, r *http.Request) {
	var rec map[string]any
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if id, ok := rec["id"]; !ok || id == nil || id == "" {
		rec["id"] = uuid.NewString()
	}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, copyRecord(rec))
}

func (s *FakeTaskServer) update(w http.ResponseWriter, r *http.Request) {
	var rec map[string]any
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(mux.Vars(r)["id"])
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}
	rec["id"] = s.records[idx]["id"]
	s.records[idx] = rec
	writeJSON(w, http.StatusOK, copyRecord(rec))
}

func (s *FakeTaskServer) remove(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(mux.Vars(r)["id"])
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	writeJSON(w, http.StatusOK, map[string]any{})
}

// indexOf matches ids by their JSON text so numeric and string ids both resolve.
// Caller must hold s.mu.
func (s *FakeTaskServer) indexOf(id string) int {
	for i, rec := range s.records {
		if idText(rec["id"]) == id {
			return i
		}
	}
	return -1
}

func idText(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case nil:
		return ""
	default:
		b, _ := json.Marshal(id)
		return string(b)
	}
}

func copyRecord(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
