package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested  EventType = "PageRequested"
	EventPageLoaded     EventType = "PageLoaded"
	EventPageFailed     EventType = "PageFailed"
	EventTeamRequested  EventType = "TeamRequested"
	EventTeamResolved   EventType = "TeamResolved"
	EventDetailFailed   EventType = "DetailFailed"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventTrainerCreated EventType = "TrainerCreated"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent is emitted when a listing page fetch starts
type PageRequestedEvent struct {
	Offset int
	Limit  int
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageLoadedEvent is emitted after a listing page was applied to the cache
type PageLoadedEvent struct {
	Offset  int // offset the page was requested with
	Fetched int // items returned upstream
	Added   int // items kept after de-duplication
	HasMore bool
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// PageFailedEvent is emitted when a listing page fetch fails
type PageFailedEvent struct {
	Offset int
	Err    error
}

func (e PageFailedEvent) Type() EventType { return EventPageFailed }

// TeamRequestedEvent is emitted when detail resolution for a team starts
type TeamRequestedEvent struct {
	Names []string
}

func (e TeamRequestedEvent) Type() EventType { return EventTeamRequested }

// TeamResolvedEvent is emitted when detail resolution for a team finishes
type TeamResolvedEvent struct {
	Requested int
	Resolved  int
}

func (e TeamResolvedEvent) Type() EventType { return EventTeamResolved }

// DetailFailedEvent is emitted when a single detail lookup fails
type DetailFailedEvent struct {
	Name string
	Err  error
}

func (e DetailFailedEvent) Type() EventType { return EventDetailFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// TrainerCreatedEvent is emitted when a registration passes validation
type TrainerCreatedEvent struct {
	Trainer Trainer
}

func (e TrainerCreatedEvent) Type() EventType { return EventTrainerCreated }
