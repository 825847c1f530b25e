// Package assembler groups generated declarations into the source files of
// the generated package.
package assembler

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/ettle/strcase"

	"github.com/Yamashou/gqlbuilder/codegen"
	"github.com/Yamashou/gqlbuilder/scalar"
)

const header = "// Code generated by gqlbuilder. DO NOT EDIT.\n"

type Options struct {
	// Package is the package clause of every unit.
	Package string
	// RuntimeImport is always imported. Defaults to
	// scalar.DefaultRuntimeImport.
	RuntimeImport string
}

// Unit is one generated source file.
type Unit struct {
	Name    string
	Content string
}

// FileName returns the unit name of a category, e.g. input_objects.go.
func FileName(c codegen.Category) string {
	return strcase.ToSnake(string(c)) + ".go"
}

// Assemble returns one unit per category, in codegen.Categories order.
// Units without declarations are still produced so that files left over
// from a previous schema get overwritten.
func Assemble(decls []codegen.Declaration, opts Options) []Unit {
	runtimeImport := opts.RuntimeImport
	if runtimeImport == "" {
		runtimeImport = scalar.DefaultRuntimeImport
	}

	byCategory := make(map[codegen.Category][]codegen.Declaration, len(codegen.Categories))
	for _, d := range decls {
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}

	units := make([]Unit, 0, len(codegen.Categories))
	for _, c := range codegen.Categories {
		units = append(units, Unit{
			Name:    FileName(c),
			Content: render(opts.Package, runtimeImport, byCategory[c]),
		})
	}

	return units
}

func render(pkg, runtimeImport string, decls []codegen.Declaration) string {
	imports := []string{runtimeImport}
	for _, d := range decls {
		imports = append(imports, d.Imports...)
	}
	slices.Sort(imports)
	imports = slices.Compact(imports)

	var buf strings.Builder
	buf.WriteString(header)
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf("package %s\n", pkg))
	buf.WriteString("\n")
	buf.WriteString("import (\n")
	for _, imp := range imports {
		buf.WriteString("\t" + importSpec(imp) + "\n")
	}
	buf.WriteString(")\n")

	for _, d := range decls {
		buf.WriteString("\n")
		buf.WriteString(d.Text)
	}

	return buf.String()
}

// importSpec names the import explicitly when the generated code refers to
// the package by a name other than its last path element.
func importSpec(importPath string) string {
	name := scalar.PackageName(importPath)
	if name == path.Base(importPath) {
		return fmt.Sprintf("%q", importPath)
	}
	return fmt.Sprintf("%s %q", name, importPath)
}
