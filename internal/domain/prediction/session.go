package prediction

import (
	"context"
	"time"
)

// Action identifies an independently guarded user action.
type Action string

const (
	ActionPredict       Action = "predict"
	ActionCompatibility Action = "compatibility"
)

// RequestState tracks one action's request lifecycle.
type RequestState string

const (
	StateIdle    RequestState = "idle"
	StatePending RequestState = "pending"
	StateDone    RequestState = "done"
	StateError   RequestState = "error"
)

// Notice kinds.
const (
	NoticeValidation = "validation"
	NoticeError      = "error"
)

// Notice is the user-visible message for the action just handled. It is
// rendered once and never stored with the session.
type Notice struct {
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
}

// Session is the per-browser application context: form state, the current
// result and the compatibility panel. It replaces page-level globals.
type Session struct {
	ID                string                  `json:"id"`
	Form              Form                    `json:"form"`
	Result            *Result                 `json:"result,omitempty"`
	ResultsVisible    bool                    `json:"results_visible"`
	CompatibilityForm CompatibilityForm       `json:"compatibility_form"`
	Compatibility     *Compatibility          `json:"compatibility,omitempty"`
	Requests          map[Action]RequestState `json:"requests,omitempty"`
	Notice            *Notice                 `json:"notice,omitempty"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// NewSession returns an empty session with every action idle.
func NewSession(id string) Session {
	return Session{
		ID: id,
		Requests: map[Action]RequestState{
			ActionPredict:       StateIdle,
			ActionCompatibility: StateIdle,
		},
	}
}

// State returns the request state of action, defaulting to idle.
func (s Session) State(action Action) RequestState {
	if st, ok := s.Requests[action]; ok {
		return st
	}
	return StateIdle
}

func (s *Session) setState(action Action, st RequestState) {
	if s.Requests == nil {
		s.Requests = make(map[Action]RequestState)
	}
	s.Requests[action] = st
}

// Store keeps sessions between page requests.
type Store interface {
	Load(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, sess Session) error
	// Acquire marks action as in flight for the session; false means it already is.
	Acquire(ctx context.Context, id string, action Action, ttl time.Duration) (bool, error)
	Release(ctx context.Context, id string, action Action) error
}
