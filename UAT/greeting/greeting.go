// Package greeting demonstrates generated stand-ins for a small collaborator
// interface.
package greeting

//go:generate go run ../../standingen Greeter

// Greeter supplies the greeting a Welcomer displays.
type Greeter interface {
	// Greeting returns the current greeting.
	Greeting() string

	// SetGreeting replaces the current greeting.
	SetGreeting(greeting string)
}

// Welcomer is a system under test holding exactly one Greeter, acquired at
// construction and never replaced.
type Welcomer struct {
	greeter Greeter
}

// NewWelcomer returns a Welcomer using the given Greeter.
func NewWelcomer(greeter Greeter) *Welcomer {
	return &Welcomer{greeter: greeter}
}

// Welcome reports the greeting as read at call time, never cached.
func (w *Welcomer) Welcome() string {
	return w.greeter.Greeting()
}
