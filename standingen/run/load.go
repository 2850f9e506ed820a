package run

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

var errNoPackagesFound = errors.New("no packages found")

// PackageDST loads a package by import path and returns its DST files and
// FileSet. Fast DST parsing, no type checking. "." loads the current
// directory, including test files; other paths resolve through go/build and
// skip test files.
func PackageDST(importPath string) ([]*dst.File, *token.FileSet, error) {
	dir, err := resolvePackageDir(importPath)
	if err != nil {
		return nil, nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	includeTests := importPath == "."

	goFiles := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			continue
		}

		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}

		goFiles = append(goFiles, filepath.Join(dir, name))
	}

	if len(goFiles) == 0 {
		return nil, nil, fmt.Errorf("%w: no .go files in %s", errNoPackagesFound, dir)
	}

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)

	allFiles := make([]*dst.File, 0, len(goFiles))

	for _, goFile := range goFiles {
		dstFile, err := dec.ParseFile(goFile, nil, 0)
		if err != nil {
			// Skip files with parse errors
			continue
		}

		allFiles = append(allFiles, dstFile)
	}

	if len(allFiles) == 0 {
		return nil, nil, fmt.Errorf(
			"%w: failed to parse any .go files in %s",
			errNoPackagesFound,
			dir,
		)
	}

	return allFiles, fset, nil
}

// resolvePackageDir maps an import path to a directory on disk.
func resolvePackageDir(importPath string) (string, error) {
	if importPath == "." {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}

		return dir, nil
	}

	srcDir, _ := os.Getwd()

	pkg, err := build.Import(importPath, srcDir, build.FindOnly)
	if err != nil {
		return "", fmt.Errorf("failed to find package %q: %w", importPath, err)
	}

	return pkg.Dir, nil
}
