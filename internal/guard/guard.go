// Package guard gates protected content on the session phase.
//
// The guard itself is a three-way decision with one piece of memory: whether
// it already sent the visitor to the login destination for the current
// anonymous period. Everything else is driven by the session store.
package guard

import (
	"sync"

	"monedero/internal/session"
)

// Decision tells the caller what it may render.
type Decision int

const (
	// RenderLoading: hydration is in flight; show a placeholder, nothing
	// else, and do not navigate.
	RenderLoading Decision = iota
	// RenderNothing: the visitor is anonymous; protected content must not
	// be rendered. Navigation to the login destination has been issued.
	RenderNothing
	// RenderChildren: the session is authenticated; render protected
	// content unmodified.
	RenderChildren
)

// Navigator performs the navigation side effect. In the HTTP layer this is
// an HTTP redirect; tests substitute a recorder.
type Navigator interface {
	Navigate(destination string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(destination string)

func (f NavigatorFunc) Navigate(destination string) {
	f(destination)
}

// PhaseSource is the slice of the session store the guard reads.
type PhaseSource interface {
	Phase() session.Phase
	AnonymousEpoch() uint64
}

// Guard resolves the session phase into a render decision and issues the
// login navigation exactly once per transition into the anonymous phase.
type Guard struct {
	sessions    PhaseSource
	nav         Navigator
	destination string

	mu            sync.Mutex
	navigatedFor  uint64
	navigatedOnce bool
}

// New builds a guard that sends anonymous visitors to destination.
func New(sessions PhaseSource, nav Navigator, destination string) *Guard {
	return &Guard{sessions: sessions, nav: nav, destination: destination}
}

// Resolve returns the render decision for the current phase. While the
// session is anonymous, the first Resolve of each anonymous period fires the
// navigation; later calls in the same period return RenderNothing silently.
func (g *Guard) Resolve() Decision {
	switch g.sessions.Phase() {
	case session.PhaseHydrating:
		return RenderLoading
	case session.PhaseAuthenticated:
		return RenderChildren
	}

	epoch := g.sessions.AnonymousEpoch()

	g.mu.Lock()
	fire := !g.navigatedOnce || g.navigatedFor != epoch
	if fire {
		g.navigatedOnce = true
		g.navigatedFor = epoch
	}
	g.mu.Unlock()

	if fire {
		g.nav.Navigate(g.destination)
	}
	return RenderNothing
}

// Destination reports where anonymous visitors are sent.
func (g *Guard) Destination() string {
	return g.destination
}
