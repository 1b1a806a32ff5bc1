package onboarding

import (
	"context" // Context for store operations
	"errors"  // Error values
	"fmt"     // Error wrapping
)

// Session is the client-held evidence of a logged-in identity.
// Absence of a Session means "not logged in".
type Session struct {
	Name     string `json:"name"`     // Display name
	Email    string `json:"email"`    // Account email, keys the seller profile
	UserType string `json:"userType"` // user or admin
}

// State of the seller onboarding machine
type State int

// Onboarding states
const (
	NotLoggedIn          State = iota // No Session present; terminal for this controller
	AwaitingRegistration              // Session present, no seller profile yet; the form is shown
	Registered                        // Session present and seller profile found; the dashboard is shown
)

// String returns a readable state name
func (s State) String() string {
	switch s {
	case NotLoggedIn:
		return "not_logged_in"
	case AwaitingRegistration:
		return "awaiting_registration"
	case Registered:
		return "registered"
	default:
		return "unknown"
	}
}

// Controller errors
var (
	ErrNotMounted       = errors.New("controller not mounted")              // Mount must run before Submit or Cancel
	ErrInvalidState     = errors.New("operation not valid in this state")   // Submit/Cancel outside AwaitingRegistration
	ErrSubmitInProgress = errors.New("a submission is already in progress") // Concurrent submit rejected
)

// Controller is the seller onboarding state machine. It reads the persisted
// Session and seller-profile records from an injected Store and gates access
// to the seller dashboard on them. Event-driven and single-threaded: callers
// drive it from one goroutine.
type Controller struct {
	store      Store    // Persisted key-value backend
	state      State    // Current machine state
	session    *Session // Session read at mount, nil when not logged in
	mounted    bool     // Whether Mount has run
	submitting bool     // In-flight submit guard
}

// NewController returns an unmounted Controller over the given store
func NewController(store Store) *Controller {
	return &Controller{store: store}
}

// State returns the current machine state
func (c *Controller) State() State {
	return c.state
}

// Session returns the session read at mount, or nil when not logged in
func (c *Controller) Session() *Session {
	return c.session
}

// Mount reads the persisted Session and seller profile and resolves the
// initial state: no Session means NotLoggedIn, a Session with a stored
// seller profile means Registered, otherwise AwaitingRegistration.
// Mounting never writes to the store.
func (c *Controller) Mount(ctx context.Context) (State, error) {
	var session Session
	found, err := c.store.Get(ctx, SessionKey, &session)
	if err != nil {
		return c.state, fmt.Errorf("read session: %w", err)
	}
	c.mounted = true
	// No session means not logged in
	if !found {
		c.session = nil
		c.state = NotLoggedIn
		return c.state, nil
	}
	c.session = &session
	// Existence of the seller profile is the registration predicate
	registered, err := c.store.Has(ctx, SellerKey(session.Email))
	if err != nil {
		c.mounted = false
		return c.state, fmt.Errorf("read seller profile: %w", err)
	}
	if registered {
		c.state = Registered
	} else {
		c.state = AwaitingRegistration
	}
	return c.state, nil
}

// Submit persists the seller profile for the mounted session and moves the
// machine to Registered. Only valid from AwaitingRegistration. A failed write
// leaves the machine in AwaitingRegistration and surfaces the error; the
// machine never reports Registered without a durable profile. While a submit
// is in flight a second Submit is rejected with ErrSubmitInProgress.
func (c *Controller) Submit(ctx context.Context, profile any) error {
	if !c.mounted {
		return ErrNotMounted
	}
	// Submission is only meaningful while awaiting registration
	if c.state != AwaitingRegistration {
		return ErrInvalidState
	}
	// Reject a second submission while one is in flight
	if c.submitting {
		return ErrSubmitInProgress
	}
	c.submitting = true
	defer func() { c.submitting = false }()
	// Persist the profile; the write is the only suspension point
	if err := c.store.Set(ctx, SellerKey(c.session.Email), profile); err != nil {
		return fmt.Errorf("persist seller profile: %w", err)
	}
	c.state = Registered
	return nil
}

// Cancel abandons registration without writing anything. Only valid from
// AwaitingRegistration; control leaves the component afterwards, which is an
// exit rather than a state, so the machine is left as-is.
func (c *Controller) Cancel() error {
	if !c.mounted {
		return ErrNotMounted
	}
	if c.state != AwaitingRegistration {
		return ErrInvalidState
	}
	if c.submitting {
		return ErrSubmitInProgress
	}
	return nil
}
