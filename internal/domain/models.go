package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Option is one selectable entry in the team picker
type Option struct {
	Identity string // unique within a loaded set, stable across pages
	Name     string // upstream name, used for detail lookups
	Label    string // name shown in the UI
	ImageRef string // sprite URL, may be empty
}

// Creature is the detailed record shown in the team summary
type Creature struct {
	ID    int
	Name  string
	Image string
	Types []string
}

// Trainer is a submitted registration
type Trainer struct {
	FirstName string
	LastName  string
	Team      []Creature
}

// PageCursor tracks pagination progress against the listing service
type PageCursor struct {
	Offset  int
	HasMore bool
}

// ListItem is a raw entry from the listing endpoint
type ListItem struct {
	Name string
	URL  string
}

var trailingIDRE = regexp.MustCompile(`/(\d+)/?$`)

// IDFromURL extracts the trailing numeric path segment of an item URL.
// Returns 0 when the URL carries no id.
func IDFromURL(url string) int {
	matches := trailingIDRE.FindStringSubmatch(url)
	if matches == nil {
		return 0
	}
	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}
	return id
}

// DisplayName upper-cases the first rune of name
func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// SpriteURL builds the sprite image URL for an id
func SpriteURL(spriteBase string, id int) string {
	return fmt.Sprintf("%s/%d.png", strings.TrimRight(spriteBase, "/"), id)
}

// NewOption maps a listing entry to an Option
func NewOption(item ListItem, spriteBase string) Option {
	id := IDFromURL(item.URL)
	opt := Option{
		Identity: fmt.Sprintf("%s-%d", item.Name, id),
		Name:     item.Name,
		Label:    DisplayName(item.Name),
	}
	if spriteBase != "" {
		opt.ImageRef = SpriteURL(spriteBase, id)
	}
	return opt
}
