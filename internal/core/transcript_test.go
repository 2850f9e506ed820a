package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/standinlib/standin/internal/core"
)

func TestScenarioRunMatchesContract(t *testing.T) {
	t.Parallel()

	scenarios := []core.Scenario{
		{Kind: core.KindValue, Initial: "Original Test Double", Mutated: "This is the mutated string"},
		{Kind: core.KindShared, Initial: "Original Test Double", Mutated: "This is the mutated string"},
		{Kind: core.KindValue, Mutated: "changed"}, // default initial payload
		{Kind: core.KindShared, Initial: "", Mutated: ""},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.Kind+"/"+scenario.Mutated, func(t *testing.T) {
			t.Parallel()

			diff, err := scenario.Verify()
			if err != nil {
				t.Fatalf("Verify() error: %v", err)
			}

			if diff != "" {
				t.Fatalf("observed transcript diverges from contract:\n%s", diff)
			}
		})
	}
}

func TestScenarioTranscriptContents(t *testing.T) {
	t.Parallel()

	scenario := core.Scenario{
		Kind:    core.KindShared,
		Initial: "first",
		Mutated: "second",
	}

	rec, err := scenario.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := "construct shared \"first\"\n" +
		"report -> \"first\"\n" +
		"mutate \"second\"\n" +
		"report -> \"second\"\n"

	if got := rec.Transcript(); got != want {
		t.Fatalf("Transcript() = %q, want %q", got, want)
	}
}

func TestScenarioRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	scenario := core.Scenario{Kind: "borrowed", Mutated: "x"}

	if _, err := scenario.Run(); !errors.Is(err, core.ErrUnknownKind) {
		t.Fatalf("Run() error = %v, want ErrUnknownKind", err)
	}

	if _, err := scenario.Expected(); !errors.Is(err, core.ErrUnknownKind) {
		t.Fatalf("Expected() error = %v, want ErrUnknownKind", err)
	}
}

func TestDiffTranscript(t *testing.T) {
	t.Parallel()

	t.Run("identical transcripts diff to empty", func(t *testing.T) {
		t.Parallel()

		if diff := core.DiffTranscript("a\n", "a\n"); diff != "" {
			t.Fatalf("diff = %q, want empty", diff)
		}
	})

	t.Run("divergent transcripts produce a diff", func(t *testing.T) {
		t.Parallel()

		diff := core.DiffTranscript("a\n", "b\n")
		if diff == "" {
			t.Fatal("expected a non-empty diff")
		}

		if !strings.Contains(diff, "a") || !strings.Contains(diff, "b") {
			t.Fatalf("diff %q should contain both payloads", diff)
		}
	})
}

func TestEmptyRecorderTranscript(t *testing.T) {
	t.Parallel()

	rec := &core.Recorder{}
	if got := rec.Transcript(); got != "" {
		t.Fatalf("Transcript() = %q, want empty", got)
	}
}
