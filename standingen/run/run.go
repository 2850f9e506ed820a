// Package run implements the main logic for the standingen tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"
	"github.com/toejough/go-reorder"
)

// Interfaces - Public

// FileSystem interface for mocking.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader interface for mocking.
type PackageLoader interface {
	Load(importPath string) ([]*dst.File, *token.FileSet, error)
}

// Errors

var (
	errInterfaceNotFound = errors.New("interface not found")
	errUnsupportedMethod = errors.New("unsupported method shape")
)

// Structs - Private

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Interface string `arg:"positional,required" help:"interface to implement (e.g. Greeter or some/pkg.Greeter)"`
	Name      string `arg:"--name"              help:"base name for the generated stand-ins (defaults to <Interface>Standin)"`
}

// generatorInfo holds information gathered for generation.
type generatorInfo struct {
	pkgName, importPath, localInterfaceName, baseName string
}

// Functions - Public

// Run executes the standingen tool logic. It takes command-line arguments, an environment variable getter, a
// FileSystem interface for file operations, a PackageLoader for package operations, and an output writer for
// progress messages. On success, it generates a Go source file with a shared-semantics and a copy-semantics
// stand-in for the specified interface, in the calling package.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	info, err := getGeneratorCallInfo(args, getEnv)
	if err != nil {
		return err
	}

	astFiles, _, err := pkgLoader.Load(info.importPath)
	if err != nil {
		return err
	}

	iface, err := findInterface(astFiles, info.localInterfaceName)
	if err != nil {
		return err
	}

	methods, err := classifyMethods(iface, info.localInterfaceName)
	if err != nil {
		return err
	}

	targetPkgName := ""
	if info.importPath != "." && len(astFiles) > 0 {
		targetPkgName = astFiles[0].Name.Name
	}

	code := generateCode(info, targetPkgName, methods)

	return writeGeneratedCode(code, info, getEnv, fileSys, out)
}

// Functions - Private

// getGeneratorCallInfo returns basic information about the current call to the generator.
func getGeneratorCallInfo(args []string, getEnv func(string) string) (generatorInfo, error) {
	pkgName := getEnv("GOPACKAGE")

	parsed, err := parseArgs(args)
	if err != nil {
		return generatorInfo{}, err
	}

	importPath, localInterfaceName := splitInterfaceSpec(parsed.Interface)

	baseName := parsed.Name
	if baseName == "" {
		baseName = localInterfaceName + "Standin" // default stand-in name
	}

	return generatorInfo{
		pkgName:            pkgName,
		importPath:         importPath,
		localInterfaceName: localInterfaceName,
		baseName:           baseName,
	}, nil
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// splitInterfaceSpec splits "some/pkg.Iface" into its import path and local
// name. A bare "Iface" refers to the current package.
func splitInterfaceSpec(spec string) (importPath, localName string) {
	idx := strings.LastIndex(spec, ".")
	if idx < 0 {
		return ".", spec
	}

	return spec[:idx], spec[idx+1:]
}

// writeGeneratedCode writes the generated code to generated_<baseName>.go,
// reordering declarations according to project conventions first.
func writeGeneratedCode(code string, info generatorInfo, getEnv func(string) string, fileSys FileSystem, out io.Writer) error {
	const generatedFilePermissions = 0o600

	filename := "generated_" + info.baseName + ".go"
	// If we're in a test package OR the source file is a test file, append _test to the filename.
	// This handles both blackbox testing (package xxx_test) and whitebox testing (package xxx in xxx_test.go).
	goFile := getEnv("GOFILE")

	isTestFile := strings.HasSuffix(info.pkgName, "_test") || strings.HasSuffix(goFile, "_test.go")
	if isTestFile {
		filename = "generated_" + info.baseName + "_test.go"
	}

	reordered, err := reorder.Source(code)
	if err != nil {
		// If reordering fails, log but continue with original code
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", filename, err)

		reordered = code
	}

	err = fileSys.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}
