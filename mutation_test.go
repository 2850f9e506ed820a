//go:build mutation

package standin

import (
	"testing"

	"github.com/gtramontina/ooze"
)

func TestMutation(t *testing.T) {
	ooze.Release(
		t,
		ooze.WithTestCommand("go test ./..."),
		ooze.Parallel(),
		ooze.IgnoreSourceFiles("^cmd/.*|^dev/.*|generated_.*|.*_test.go"),
		ooze.WithMinimumThreshold(1.00),
		ooze.WithRepositoryRoot("."),
		ooze.ForceColors(),
	)
}
