package core_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/standinlib/standin/internal/core"
)

func TestConstructionHoldsInitialPayload(t *testing.T) {
	t.Parallel()

	t.Run("value", func(t *testing.T) {
		t.Parallel()

		v := core.NewValue("hello")
		if got := v.Read(); got != "hello" {
			t.Fatalf("Read() = %q, want %q", got, "hello")
		}
	})

	t.Run("shared", func(t *testing.T) {
		t.Parallel()

		s := core.NewShared("hello")
		if got := s.Read(); got != "hello" {
			t.Fatalf("Read() = %q, want %q", got, "hello")
		}
	})

	t.Run("empty payload is allowed", func(t *testing.T) {
		t.Parallel()

		if got := core.NewShared("").Read(); got != "" {
			t.Fatalf("Read() = %q, want empty", got)
		}
	})
}

func TestZeroArgumentConstructionReadsDefault(t *testing.T) {
	t.Parallel()

	if got := core.NewDefaultValue().Read(); got != core.DefaultPayload {
		t.Fatalf("value default = %q, want %q", got, core.DefaultPayload)
	}

	if got := core.NewDefaultShared().Read(); got != core.DefaultPayload {
		t.Fatalf("shared default = %q, want %q", got, core.DefaultPayload)
	}
}

func TestMutateReplacesPayload(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		initial := rapid.String().Draw(rt, "initial")
		mutated := rapid.String().Draw(rt, "mutated")

		s := core.NewShared(initial)
		s.Mutate(mutated)

		if got := s.Read(); got != mutated {
			rt.Fatalf("Read() after Mutate = %q, want %q", got, mutated)
		}
	})
}

// Assigning a Value copies it: the Go-native rendition of copy semantics,
// before any harness or interface is involved.
func TestValueAssignmentCopies(t *testing.T) {
	t.Parallel()

	original := core.NewValue("before")
	copied := *original

	original.Mutate("after")

	if got := original.Read(); got != "after" {
		t.Fatalf("original.Read() = %q, want %q", got, "after")
	}

	if got := copied.Read(); got != "before" {
		t.Fatalf("copied.Read() = %q, want %q", got, "before")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		initial := rapid.String().Draw(rt, "initial")
		mutated := rapid.String().Draw(rt, "mutated")

		original := core.NewValue(initial)
		clone := original.Clone()

		original.Mutate(mutated)

		if got := clone.Read(); got != initial {
			rt.Fatalf("clone.Read() = %q, want %q", got, initial)
		}

		// Mutation through the clone never leaks back either.
		clone.Mutate(mutated + "x")

		if got := original.Read(); got != mutated {
			rt.Fatalf("original.Read() = %q, want %q", got, mutated)
		}
	})
}

func TestSharedHandlesAlias(t *testing.T) {
	t.Parallel()

	s := core.NewShared("before")
	other := s // same instance, second handle

	other.Mutate("after")

	if got := s.Read(); got != "after" {
		t.Fatalf("Read() through first handle = %q, want %q", got, "after")
	}
}
