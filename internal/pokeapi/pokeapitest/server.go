// Package pokeapitest provides an in-memory listing service for tests.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// Server serves /pokemon and /pokemon/<name> from a fixed list of names.
// Item ids are 1-based positions in the list.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	names        []string
	types        map[string][]string
	failures     int
	listRequests []string
	detailCalls  int
}

// NewServer starts a server listing names in order
func NewServer(names ...string) *Server {
	s := &Server{
		names: names,
		types: make(map[string][]string),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon", s.handleList)
	mux.HandleFunc("/pokemon/", s.handleDetail)
	s.Server = httptest.NewServer(mux)
	return s
}

// SetTypes sets the types reported for name
func (s *Server) SetTypes(name string, types ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types[name] = types
}

// FailNext makes the next n requests answer 500
func (s *Server) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = n
}

// ListRequests returns the raw query of every listing request received
func (s *Server) ListRequests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.listRequests...)
}

// DetailCalls returns the number of detail requests received
func (s *Server) DetailCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detailCalls
}

func (s *Server) fail(w http.ResponseWriter) bool {
	if s.failures > 0 {
		s.failures--
		http.Error(w, "upstream unavailable", http.StatusInternalServerError)
		return true
	}
	return false
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listRequests = append(s.listRequests, r.URL.RawQuery)
	if s.fail(w) {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	type item struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	results := []item{}
	for i := offset; i < offset+limit && i < len(s.names); i++ {
		results = append(results, item{
			Name: s.names[i],
			URL:  fmt.Sprintf("%s/pokemon/%d/", s.URL, i+1),
		})
	}

	var next, previous *string
	if offset+limit < len(s.names) {
		n := fmt.Sprintf("%s/pokemon?offset=%d&limit=%d", s.URL, offset+limit, limit)
		next = &n
	}
	if offset > 0 {
		p := fmt.Sprintf("%s/pokemon?offset=%d&limit=%d", s.URL, max(offset-limit, 0), limit)
		previous = &p
	}

	writeJSON(w, map[string]any{
		"count":    len(s.names),
		"next":     next,
		"previous": previous,
		"results":  results,
	})
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailCalls++
	if s.fail(w) {
		return
	}

	key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/pokemon/"), "/")
	for i, name := range s.names {
		if name != key && strconv.Itoa(i+1) != key {
			continue
		}
		types := s.types[name]
		if types == nil {
			types = []string{"normal"}
		}
		typeList := make([]map[string]any, 0, len(types))
		for slot, t := range types {
			typeList = append(typeList, map[string]any{
				"slot": slot + 1,
				"type": map[string]string{"name": t},
			})
		}
		writeJSON(w, map[string]any{
			"id":   i + 1,
			"name": name,
			"sprites": map[string]any{
				"front_default": fmt.Sprintf("%s/sprites/%d.png", s.URL, i+1),
			},
			"types": typeList,
		})
		return
	}
	http.NotFound(w, r)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
