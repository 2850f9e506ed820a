// standin/standingen is a tool to generate typed stand-ins for Go interfaces.
// To use it, install it with `go install github.com/standinlib/standin/standingen@latest`
// and in your test files, add a `//go:generate standingen <interface>` comment to generate stand-ins for the
// specified interface. The interface's methods must all be getter-shaped (`M() string`) or setter-shaped
// (`M(string)`); every method is backed by one standin payload cell. By default, the generated types are named
// <Interface>Standin (shared semantics) and <Interface>ValueStandin (copy semantics). Add a `--name <name>` flag
// to override the base name. The generated code is placed in a file named generated_<name>.go (or _test.go when
// generating into a test package), in the package containing the `//go:generate` comment.
package main

import (
	"fmt"
	"go/token"
	"os"

	"github.com/dave/dst"

	"github.com/standinlib/standin/standingen/run"
)

// main is the entry point of the standingen tool.
func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using the os package.
type realFileSystem struct{}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load loads a package by import path and returns its DST files and FileSet.
func (pl *realPackageLoader) Load(importPath string) ([]*dst.File, *token.FileSet, error) {
	files, fset, err := run.PackageDST(importPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return files, fset, nil
}
