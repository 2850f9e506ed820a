// Package standin provides test doubles with explicit capture semantics.
// A Value double is captured by copy: mutations made after a harness takes
// it are invisible to the harness. A Shared double is captured by reference:
// every mutation is visible through every handle. One generic Harness
// exhibits both behaviors purely as a function of the double it is given.
//
// This is the public API entry point. Implementation lives in internal/core.
package standin

import (
	"github.com/standinlib/standin/internal/core"
)

// DefaultPayload is the payload a double constructed without an explicit
// payload reads back.
const DefaultPayload = core.DefaultPayload

// Realization kinds accepted by Scenario.
const (
	KindValue  = core.KindValue
	KindShared = core.KindShared
)

// ErrUnknownKind is returned for a scenario kind other than KindValue or
// KindShared.
var ErrUnknownKind = core.ErrUnknownKind

// AnyHarness is the interface-typed-field variant of Harness.
type AnyHarness = core.AnyHarness

// NewAnyHarness returns a harness holding the given double behind the
// Double interface.
func NewAnyHarness(collab Double) *AnyHarness {
	return core.NewAnyHarness(collab)
}

// Cloner is the capability a copy-semantics double advertises: capture
// should store an independent copy rather than the handle it was given.
type Cloner = core.Cloner

// Double is the collaborator capability: a holder of one mutable string
// payload, exposing Mutate and Read.
type Double = core.Double

// Harness is the system under test: a container holding exactly one double,
// captured at construction and never replaced.
type Harness[D Double] = core.Harness[D]

// NewHarness returns a harness holding the given double.
func NewHarness[D Double](collab D) *Harness[D] {
	return core.NewHarness(collab)
}

// Matcher defines the interface for flexible payload matching.
type Matcher = core.Matcher

// MatchValue checks if actual matches expected, via Matcher or DeepEqual.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Recorder captures the ordered steps of a scenario and renders them as the
// printed transcript.
type Recorder = core.Recorder

// DiffTranscript returns a unified diff between the expected and actual
// transcripts, or "" when they match.
func DiffTranscript(expected, actual string) string {
	return core.DiffTranscript(expected, actual)
}

// Scenario is one construct -> capture -> mutate -> report run against a
// single realization.
type Scenario = core.Scenario

// Shared is the shared-semantics realization of Double.
type Shared = core.Shared

// NewShared returns a shared-semantics double holding the given payload.
func NewShared(payload string) *Shared {
	return core.NewShared(payload)
}

// NewDefaultShared returns a shared-semantics double holding DefaultPayload.
func NewDefaultShared() *Shared {
	return core.NewDefaultShared()
}

// TestReporter is the minimal interface standin needs from test frameworks.
type TestReporter = core.TestReporter

// Value is the copy-semantics realization of Double.
type Value = core.Value

// NewValue returns a copy-semantics double holding the given payload.
func NewValue(payload string) *Value {
	return core.NewValue(payload)
}

// NewDefaultValue returns a copy-semantics double holding DefaultPayload.
func NewDefaultValue() *Value {
	return core.NewDefaultValue()
}
