// Package testutil provides an in-memory fake of the REST document store for
// tests: exact-match query filtering, addressing by primary id, POST/PUT/
// PATCH/DELETE — the same surface the real store exposes.
package testutil

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeStore is an httptest-backed document store.
type FakeStore struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]any
	server      *httptest.Server

	// Fail forces every request to return 500, for unreachable-store tests.
	Fail bool
}

// NewFakeStore starts a fake store that shuts down with the test.
func NewFakeStore(t *testing.T) *FakeStore {
	t.Helper()
	s := &FakeStore{collections: make(map[string]map[string]map[string]any)}
	s.server = httptest.NewServer(s)
	t.Cleanup(s.server.Close)
	return s
}

// URL returns the store's base URL.
func (s *FakeStore) URL() string {
	return s.server.URL
}

// Seed inserts a document into a collection. doc is marshaled through JSON so
// any model struct works; it must carry an "id" field.
func (s *FakeStore) Seed(t *testing.T, collection string, doc any) {
	t.Helper()
	m, err := toMap(doc)
	if err != nil {
		t.Fatalf("seed %s: %v", collection, err)
	}
	id := idString(m["id"])
	if id == "" {
		t.Fatalf("seed %s: document has no id", collection)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	s.collections[collection][id] = m
}

// Count reports how many documents a collection holds.
func (s *FakeStore) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

// Doc returns a stored document by id, or nil.
func (s *FakeStore) Doc(collection, id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collections[collection][id]
}

// ServeHTTP implements the store's REST semantics.
func (s *FakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.Fail {
		http.Error(w, "store down", http.StatusInternalServerError)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case len(parts) == 1:
		s.handleCollection(w, r, parts[0])
	case len(parts) == 2:
		s.handleDocument(w, r, parts[0], parts[1])
	default:
		http.NotFound(w, r)
	}
}

func (s *FakeStore) handleCollection(w http.ResponseWriter, r *http.Request, collection string) {
	switch r.Method {
	case http.MethodGet:
		docs := []map[string]any{}
		for _, doc := range s.collections[collection] {
			if matchesFilter(doc, r.URL.Query()) {
				docs = append(docs, doc)
			}
		}
		writeJSON(w, http.StatusOK, docs)
	case http.MethodPost:
		doc, ok := readDoc(w, r)
		if !ok {
			return
		}
		id := idString(doc["id"])
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		if s.collections[collection] == nil {
			s.collections[collection] = make(map[string]map[string]any)
		}
		s.collections[collection][id] = doc
		writeJSON(w, http.StatusCreated, doc)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *FakeStore) handleDocument(w http.ResponseWriter, r *http.Request, collection, id string) {
	existing, found := s.collections[collection][id]

	switch r.Method {
	case http.MethodGet:
		if !found {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, existing)
	case http.MethodPut:
		doc, ok := readDoc(w, r)
		if !ok {
			return
		}
		if s.collections[collection] == nil {
			s.collections[collection] = make(map[string]map[string]any)
		}
		s.collections[collection][id] = doc
		writeJSON(w, http.StatusOK, doc)
	case http.MethodPatch:
		if !found {
			http.NotFound(w, r)
			return
		}
		patch, ok := readDoc(w, r)
		if !ok {
			return
		}
		for k, v := range patch {
			existing[k] = v
		}
		writeJSON(w, http.StatusOK, existing)
	case http.MethodDelete:
		if !found {
			http.NotFound(w, r)
			return
		}
		delete(s.collections[collection], id)
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func matchesFilter(doc map[string]any, filter map[string][]string) bool {
	for field, values := range filter {
		if idString(doc[field]) != values[0] {
			return false
		}
	}
	return true
}

func readDoc(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return nil, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toMap(doc any) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// idString renders an id or filter value the way it appears in a URL. JSON
// numbers decode as float64, so integral floats print without a decimal
// point.
func idString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return fmt.Sprintf("%t", x)
	case float64:
		if x == math.Trunc(x) {
			return fmt.Sprintf("%.0f", x)
		}
		return fmt.Sprintf("%v", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
