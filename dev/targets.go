//go:build targ

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
)

var errDeclarationOrder = errors.New("declaration order check failed")

// Build builds the local standingen binary.
func Build() error {
	fmt.Println("Building standingen...")

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}

	return sh.Run("go", "build", "-o", "bin/standingen", "./standingen")
}

// Check runs all checks & fixes on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,
		Generate,
		ReorderDecls,
		Test,
		Lint,
	)
}

// Generate regenerates the checked-in stand-ins.
func Generate() error {
	fmt.Println("Generating...")

	if err := targ.Deps(Build); err != nil {
		return err
	}

	return sh.Run("go", "generate", "./...")
}

// Lint runs the linter.
func Lint() error {
	fmt.Println("Linting...")

	return sh.Run("golangci-lint", "run", "./...")
}

// Mutate runs the mutation testing gate.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	return sh.Run("go", "test", "-tags", "mutation", "-run", "TestMutation", ".")
}

// ReorderDecls verifies that declaration order in source files follows
// project conventions, printing a diff for any file that does not.
func ReorderDecls() error {
	fmt.Println("Checking declaration order...")

	files, err := output("git", "ls-files", "*.go")
	if err != nil {
		return fmt.Errorf("failed to list source files: %w", err)
	}

	ordered := true

	for file := range strings.SplitSeq(files, "\n") {
		if file == "" {
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			// Generated and build-tagged files may not parse standalone
			continue
		}

		if string(content) == reordered {
			continue
		}

		ordered = false

		diff := textdiff.Unified(file+" (current)", file+" (reordered)", string(content), reordered)
		if diff != "" {
			fmt.Printf("\n%s\n", diff)
		}
	}

	if !ordered {
		return errDeclarationOrder
	}

	return nil
}

// Test runs the tests.
func Test() error {
	fmt.Println("Testing...")

	return sh.Run("go", "test", "./...")
}

// Tidy tidies the module dependencies.
func Tidy() error {
	fmt.Println("Tidying...")

	return sh.Run("go", "mod", "tidy")
}

func output(command string, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = buf
	cmd.Stderr = os.Stderr
	err := cmd.Run()

	return strings.TrimSuffix(buf.String(), "\n"), err
}
