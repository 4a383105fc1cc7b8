package domain

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindMaintenance Kind = "maintenance"
	KindFeature     Kind = "feature"
	KindGeneral     Kind = "general"
)

func Kinds() []Kind {
	return []Kind{KindMaintenance, KindFeature, KindGeneral}
}

type Priority string

const (
	PriorityImportant Priority = "important"
	PriorityGeneral   Priority = "general"
)

func Priorities() []Priority {
	return []Priority{PriorityImportant, PriorityGeneral}
}

type Announcement struct {
	ID       int
	Kind     Kind
	Title    string
	Message  string
	Date     time.Time
	Priority Priority
}

// FAQ is already rendered in the caller's language.
type FAQ struct {
	ID       string
	Question string
	Answer   string
}

type Ticket struct {
	ID          uuid.UUID
	Subject     string
	Message     string
	SubmittedAt time.Time
}
