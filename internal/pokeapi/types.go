package pokeapi

import (
	"errors"
	"fmt"

	"battletower/internal/domain"
)

// ErrNotFound is returned when the service answers 404
var ErrNotFound = errors.New("not found")

// APIError describes a non-2xx response
type APIError struct {
	StatusCode int
	Status     string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s", e.Path, e.Status)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}

// Page is one page of the listing endpoint
type Page struct {
	Results  []domain.ListItem
	Count    int
	Next     *string
	Previous *string
}

// HasNext reports whether the service has a further page
func (p *Page) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

type listResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

type detailResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

func (r *listResponse) toPage() *Page {
	page := &Page{
		Count:    r.Count,
		Next:     r.Next,
		Previous: r.Previous,
		Results:  make([]domain.ListItem, 0, len(r.Results)),
	}
	for _, item := range r.Results {
		page.Results = append(page.Results, domain.ListItem{Name: item.Name, URL: item.URL})
	}
	return page
}

func (r *detailResponse) toCreature() *domain.Creature {
	c := &domain.Creature{
		ID:    r.ID,
		Name:  r.Name,
		Types: make([]string, 0, len(r.Types)),
	}
	if r.Sprites.FrontDefault != nil {
		c.Image = *r.Sprites.FrontDefault
	}
	for _, t := range r.Types {
		c.Types = append(c.Types, t.Type.Name)
	}
	return c
}
