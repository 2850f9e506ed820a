package run

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// methodKind classifies an interface method by shape.
type methodKind int

const (
	getterMethod methodKind = iota // M() string
	setterMethod                   // M(string)
)

// standinMethod is one interface method the generated stand-ins implement.
type standinMethod struct {
	name string
	kind methodKind
}

// findInterface locates the named interface declaration in the loaded files.
func findInterface(files []*dst.File, name string) (*dst.InterfaceType, error) {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok || typeSpec.Name.Name != name {
					continue
				}

				iface, ok := typeSpec.Type.(*dst.InterfaceType)
				if !ok {
					return nil, fmt.Errorf("%w: %q is not an interface", errInterfaceNotFound, name)
				}

				return iface, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", errInterfaceNotFound, name)
}

// classifyMethods checks that every method of the interface is getter- or
// setter-shaped and returns them in declaration order.
func classifyMethods(iface *dst.InterfaceType, ifaceName string) ([]standinMethod, error) {
	methods := make([]standinMethod, 0, len(iface.Methods.List))

	for _, field := range iface.Methods.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%w: %s embeds another interface", errUnsupportedMethod, ifaceName)
		}

		funcType, ok := field.Type.(*dst.FuncType)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s is not a method", errUnsupportedMethod, ifaceName, field.Names[0].Name)
		}

		for _, name := range field.Names {
			kind, err := classifyMethod(funcType)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", ifaceName, name.Name, err)
			}

			methods = append(methods, standinMethod{name: name.Name, kind: kind})
		}
	}

	return methods, nil
}

// classifyMethod decides whether a method is a getter (`() string`) or a
// setter (`(string)`). Anything else is an error: the stand-in backs every
// method with one string payload cell and cannot represent other shapes.
func classifyMethod(funcType *dst.FuncType) (methodKind, error) {
	params := countFields(funcType.Params)
	results := countFields(funcType.Results)

	switch {
	case params == 0 && results == 1 && isStringField(funcType.Results.List[0]):
		return getterMethod, nil
	case params == 1 && results == 0 && isStringField(funcType.Params.List[0]):
		return setterMethod, nil
	default:
		return 0, fmt.Errorf("%w: want `() string` or `(string)`", errUnsupportedMethod)
	}
}

// countFields counts individual parameters or results, expanding grouped
// names (`a, b string` is two).
func countFields(fields *dst.FieldList) int {
	if fields == nil {
		return 0
	}

	count := 0

	for _, field := range fields.List {
		names := len(field.Names)
		if names == 0 {
			names = 1
		}

		count += names
	}

	return count
}

// isStringField reports whether the field's type is the predeclared string.
func isStringField(field *dst.Field) bool {
	ident, ok := field.Type.(*dst.Ident)

	return ok && ident.Name == "string" && ident.Path == ""
}

// generateCode renders the stand-in pair source. targetPkgName is the name
// of the package the interface lives in, or "" when it is the local package.
func generateCode(info generatorInfo, targetPkgName string, methods []standinMethod) string {
	var builder strings.Builder

	sharedName := info.baseName
	valueName := strings.TrimSuffix(info.baseName, "Standin") + "ValueStandin"

	qualified := info.localInterfaceName
	if targetPkgName != "" {
		qualified = targetPkgName + "." + info.localInterfaceName
	}

	fmt.Fprintf(&builder, "// Code generated by standingen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&builder, "package %s\n\n", info.pkgName)

	builder.WriteString("import (\n")
	builder.WriteString("\t\"github.com/standinlib/standin\"\n")

	if targetPkgName != "" {
		fmt.Fprintf(&builder, "\n\t%s \"%s\"\n", targetPkgName, info.importPath)
	}

	builder.WriteString(")\n\n")

	fmt.Fprintf(&builder, "// Compile-time conformance checks.\nvar (\n")
	fmt.Fprintf(&builder, "\t_ %s = (*%s)(nil)\n", qualified, sharedName)
	fmt.Fprintf(&builder, "\t_ %s = (*%s)(nil)\n", qualified, valueName)
	builder.WriteString(")\n\n")

	fmt.Fprintf(&builder, "// %s is the shared-semantics stand-in for %s: every holder of the\n", sharedName, qualified)
	fmt.Fprintf(&builder, "// same *%s observes every mutation.\n", sharedName)
	fmt.Fprintf(&builder, "type %s struct {\n\tcell *standin.Shared\n}\n\n", sharedName)

	fmt.Fprintf(&builder, "// New%s returns a shared-semantics stand-in holding payload.\n", sharedName)
	fmt.Fprintf(&builder, "func New%s(payload string) *%s {\n", sharedName, sharedName)
	fmt.Fprintf(&builder, "\treturn &%s{cell: standin.NewShared(payload)}\n}\n\n", sharedName)

	for _, method := range methods {
		writeMethod(&builder, "*"+sharedName, qualified, method)
	}

	fmt.Fprintf(&builder, "// %s is the copy-semantics stand-in for %s: assignment copies\n", valueName, qualified)
	fmt.Fprintf(&builder, "// it, so a system under test handed a copy never observes later mutation\n")
	fmt.Fprintf(&builder, "// of the original.\n")
	fmt.Fprintf(&builder, "type %s struct {\n\tcell standin.Value\n}\n\n", valueName)

	fmt.Fprintf(&builder, "// New%s returns a copy-semantics stand-in holding payload.\n", valueName)
	fmt.Fprintf(&builder, "func New%s(payload string) %s {\n", valueName, valueName)
	fmt.Fprintf(&builder, "\treturn %s{cell: *standin.NewValue(payload)}\n}\n\n", valueName)

	for _, method := range methods {
		receiver := valueName
		if method.kind == setterMethod {
			receiver = "*" + valueName
		}

		writeMethod(&builder, receiver, qualified, method)
	}

	return builder.String()
}

// writeMethod renders one stand-in method delegating to the payload cell.
func writeMethod(builder *strings.Builder, receiver, qualified string, method standinMethod) {
	switch method.kind {
	case getterMethod:
		fmt.Fprintf(builder, "// %s implements %s.%s by reading the payload cell.\n", method.name, qualified, method.name)
		fmt.Fprintf(builder, "func (s %s) %s() string {\n\treturn s.cell.Read()\n}\n\n", receiver, method.name)
	case setterMethod:
		fmt.Fprintf(builder, "// %s implements %s.%s by mutating the payload cell.\n", method.name, qualified, method.name)
		fmt.Fprintf(builder, "func (s %s) %s(payload string) {\n\ts.cell.Mutate(payload)\n}\n\n", receiver, method.name)
	}
}
