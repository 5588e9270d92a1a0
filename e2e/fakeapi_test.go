//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

var fakeNames = []string{
	"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon",
	"charizard", "squirtle", "wartortle", "blastoise", "caterpie",
	"metapod", "butterfree", "weedle", "kakuna", "beedrill",
	"pidgey", "pidgeotto", "pidgeot", "rattata", "raticate",
	"spearow", "fearow", "ekans", "arbok", "pikachu",
}

// startFakeAPI serves the listing and detail endpoints for fakeNames
func startFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if limit <= 0 {
			limit = 20
		}

		results := []map[string]string{}
		for i := offset; i < offset+limit && i < len(fakeNames); i++ {
			results = append(results, map[string]string{
				"name": fakeNames[i],
				"url":  fmt.Sprintf("%s/pokemon/%d/", srv.URL, i+1),
			})
		}

		var next *string
		if offset+limit < len(fakeNames) {
			n := fmt.Sprintf("%s/pokemon?offset=%d&limit=%d", srv.URL, offset+limit, limit)
			next = &n
		}
		writeJSON(w, map[string]any{
			"count":    len(fakeNames),
			"next":     next,
			"previous": nil,
			"results":  results,
		})
	})

	mux.HandleFunc("/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/pokemon/"), "/")
		for i, name := range fakeNames {
			if name != key && strconv.Itoa(i+1) != key {
				continue
			}
			writeJSON(w, map[string]any{
				"id":      i + 1,
				"name":    name,
				"sprites": map[string]any{"front_default": fmt.Sprintf("%s/sprites/%d.png", srv.URL, i+1)},
				"types":   []map[string]any{{"slot": 1, "type": map[string]string{"name": "normal"}}},
			})
			return
		}
		http.NotFound(w, r)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
