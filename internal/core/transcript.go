package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akedrou/textdiff"
)

// Realization kinds accepted by Scenario.
const (
	KindValue  = "value"
	KindShared = "shared"
)

// ErrUnknownKind is returned for a scenario kind other than KindValue or
// KindShared.
var ErrUnknownKind = errors.New("unknown realization kind")

// Recorder captures the ordered construct/mutate/report steps of a scenario
// and renders them as the printed transcript.
type Recorder struct {
	steps []string
}

// Construct records the construction of a double.
func (r *Recorder) Construct(kind, payload string) {
	r.steps = append(r.steps, fmt.Sprintf("construct %s %q", kind, payload))
}

// Mutate records a mutation performed through the original handle.
func (r *Recorder) Mutate(payload string) {
	r.steps = append(r.steps, fmt.Sprintf("mutate %q", payload))
}

// Report records what the harness reported.
func (r *Recorder) Report(payload string) {
	r.steps = append(r.steps, fmt.Sprintf("report -> %q", payload))
}

// Transcript renders the recorded steps, one per line, newline-terminated.
func (r *Recorder) Transcript() string {
	if len(r.steps) == 0 {
		return ""
	}

	return strings.Join(r.steps, "\n") + "\n"
}

// DiffTranscript returns a unified diff between the expected and actual
// transcripts, or "" when they match.
func DiffTranscript(expected, actual string) string {
	if expected == actual {
		return ""
	}

	return textdiff.Unified("expected", "actual", expected, actual)
}

// Scenario is one construct -> capture -> mutate -> report run against a
// single realization.
type Scenario struct {
	Kind    string // KindValue or KindShared
	Initial string // constructor payload; "" means DefaultPayload
	Mutated string // payload written through the original handle after capture
}

// Run executes the scenario: construct the double, hand it to a harness,
// report, mutate through the original handle, report again. The returned
// recorder holds the observed transcript.
func (s Scenario) Run() (*Recorder, error) {
	double, err := s.construct()
	if err != nil {
		return nil, err
	}

	rec := &Recorder{}
	rec.Construct(s.Kind, double.Read())

	harness := NewAnyHarness(double)
	rec.Report(harness.Report())

	double.Mutate(s.Mutated)
	rec.Mutate(s.Mutated)
	rec.Report(harness.Report())

	return rec, nil
}

// Expected renders the transcript the visibility contract promises for this
// scenario: under copy semantics the second report still shows the initial
// payload, under shared semantics it shows the mutated one.
func (s Scenario) Expected() (string, error) {
	if s.Kind != KindValue && s.Kind != KindShared {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	initial := s.Initial
	if initial == "" {
		initial = DefaultPayload
	}

	second := s.Mutated
	if s.Kind == KindValue {
		second = initial
	}

	rec := &Recorder{}
	rec.Construct(s.Kind, initial)
	rec.Report(initial)
	rec.Mutate(s.Mutated)
	rec.Report(second)

	return rec.Transcript(), nil
}

// Verify runs the scenario and compares the observed transcript against the
// contractual one. A non-empty return is the unified diff of the mismatch.
func (s Scenario) Verify() (string, error) {
	expected, err := s.Expected()
	if err != nil {
		return "", err
	}

	rec, err := s.Run()
	if err != nil {
		return "", err
	}

	return DiffTranscript(expected, rec.Transcript()), nil
}

func (s Scenario) construct() (Double, error) {
	initial := s.Initial
	if initial == "" {
		initial = DefaultPayload
	}

	switch s.Kind {
	case KindValue:
		return NewValue(initial), nil
	case KindShared:
		return NewShared(initial), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
}
