package search

// State holds search state
type State struct {
	Query string
}

// Event types
type QueryChangedEvent struct {
	Query      string
	MatchCount int
}

type QueryClearedEvent struct{}
