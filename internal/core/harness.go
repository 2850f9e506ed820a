package core

// TestReporter is the minimal interface standin needs from test frameworks.
// *testing.T satisfies it.
type TestReporter interface {
	Fatalf(format string, args ...any)
	Helper()
}

// Cloner is the capability a copy-semantics double advertises: capture should
// store an independent copy rather than the handle it was given.
type Cloner interface {
	Clone() Double
}

// Harness is the system under test: a container holding exactly one double,
// captured at construction and never replaced. It is generic over any type
// satisfying the Double contract; whether a later external mutation of the
// double is visible through Report is decided entirely by the double's
// realization, never by the harness code.
type Harness[D Double] struct {
	collab D
}

// NewHarness returns a harness holding the given double.
func NewHarness[D Double](collab D) *Harness[D] {
	return &Harness[D]{collab: capture(collab)}
}

// Report returns the double's payload as read at call time. It is never
// cached from construction, so repeated calls without intervening mutation
// return the same value, and under shared semantics a mutation performed
// after construction is reflected.
func (h *Harness[D]) Report() string {
	return h.collab.Read()
}

// ExpectReportIs fails the test unless Report returns exactly want.
func (h *Harness[D]) ExpectReportIs(t TestReporter, want string) {
	t.Helper()

	if got := h.Report(); got != want {
		t.Fatalf("harness reported %q, want %q", got, want)
	}
}

// ReportShould fails the test unless Report satisfies the expectation.
// The expectation may be a Matcher (including gomega matchers) or a plain
// value compared with MatchValue.
func (h *Harness[D]) ReportShould(t TestReporter, expectation any) {
	t.Helper()

	if ok, msg := MatchValue(h.Report(), expectation); !ok {
		t.Fatalf("harness report mismatch: %s", msg)
	}
}

// AnyHarness is the interface-typed-field variant of Harness. The two are
// equivalent designs; both capture through the same path.
type AnyHarness struct {
	collab Double
}

// NewAnyHarness returns a harness holding the given double behind the
// Double interface.
func NewAnyHarness(collab Double) *AnyHarness {
	return &AnyHarness{collab: capture(collab)}
}

// Report returns the double's payload as read at call time.
func (h *AnyHarness) Report() string {
	return h.collab.Read()
}

// ExpectReportIs fails the test unless Report returns exactly want.
func (h *AnyHarness) ExpectReportIs(t TestReporter, want string) {
	t.Helper()

	if got := h.Report(); got != want {
		t.Fatalf("harness reported %q, want %q", got, want)
	}
}

// ReportShould fails the test unless Report satisfies the expectation.
func (h *AnyHarness) ReportShould(t TestReporter, expectation any) {
	t.Helper()

	if ok, msg := MatchValue(h.Report(), expectation); !ok {
		t.Fatalf("harness report mismatch: %s", msg)
	}
}

// capture is the single capture path both harness variants use. A double
// advertising the Cloner capability is stored as an independent copy; any
// other double is stored verbatim. The branch is uniform over all doubles,
// so the harnesses themselves carry no per-realization code.
func capture[D Double](collab D) D {
	if cloner, ok := any(collab).(Cloner); ok {
		if clone, ok := cloner.Clone().(D); ok {
			return clone
		}
	}

	return collab
}
