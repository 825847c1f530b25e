// Package codegen turns a schema model into Go declarations: a selection
// builder function per field, lock types for objects, interfaces and unions,
// string enums, input object structs and operation constructors.
//
// Generation is pure. Every error aborts the whole run and no declarations
// are returned with it.
package codegen

import (
	"golang.org/x/sync/errgroup"

	"github.com/Yamashou/gqlbuilder/scalar"
	"github.com/Yamashou/gqlbuilder/schema"
)

type generator struct {
	schema         *schema.Schema
	scalars        *scalar.Mapper
	runtimeImport  string
	runtimeName    string
	formatter      *CodeFormatter
	reservedParams map[string]bool
}

func newGenerator(s *schema.Schema, cfg Config) *generator {
	runtimeImport := cfg.RuntimeImport
	if runtimeImport == "" {
		runtimeImport = scalar.DefaultRuntimeImport
	}
	scalars := cfg.Scalars
	if scalars == nil {
		scalars = scalar.NewWithRuntime(runtimeImport, nil)
	}

	g := &generator{
		schema:        s,
		scalars:       scalars,
		runtimeImport: runtimeImport,
		runtimeName:   scalar.PackageName(runtimeImport),
		formatter:     NewCodeFormatter(),
	}

	// parameters must not shadow packages or the sel parameter
	g.reservedParams = map[string]bool{g.runtimeName: true, "sel": true}
	for _, sc := range s.Scalars {
		if t, err := scalars.Resolve(sc.Name); err == nil && t.Package != "" {
			g.reservedParams[scalar.PackageName(t.Package)] = true
		}
	}

	return g
}

type job struct {
	category Category
	name     string
	run      func(e *emitter) (string, error)
}

func (g *generator) jobs() []job {
	var jobs []job
	for _, op := range g.schema.Operations {
		jobs = append(jobs, job{CategoryOperations, op.TypeName, func(e *emitter) (string, error) { return e.operation(op) }})
	}
	for _, o := range g.schema.Objects {
		if isGenerated(o.Name) {
			jobs = append(jobs, job{CategoryObjects, o.Name, func(e *emitter) (string, error) { return e.object(o) }})
		}
	}
	for _, i := range g.schema.Interfaces {
		if isGenerated(i.Name) {
			jobs = append(jobs, job{CategoryInterfaces, i.Name, func(e *emitter) (string, error) { return e.iface(i) }})
		}
	}
	for _, u := range g.schema.Unions {
		if isGenerated(u.Name) {
			jobs = append(jobs, job{CategoryUnions, u.Name, func(e *emitter) (string, error) { return e.union(u) }})
		}
	}
	for _, en := range g.schema.Enums {
		if isGenerated(en.Name) {
			jobs = append(jobs, job{CategoryEnums, en.Name, func(e *emitter) (string, error) { return e.enum(en), nil }})
		}
	}
	for _, in := range g.schema.InputObjects {
		if isGenerated(in.Name) {
			jobs = append(jobs, job{CategoryInputObjects, in.Name, func(e *emitter) (string, error) { return e.inputObject(in) }})
		}
	}

	return jobs
}

func (g *generator) runJob(j job) (Declaration, error) {
	e := g.newEmitter(j.name)

	text, err := j.run(e)
	if err != nil {
		return Declaration{}, err
	}

	return Declaration{Category: j.category, Name: j.name, Text: text, Imports: e.sortedImports()}, nil
}

// Generate emits one declaration per generated schema entity, grouped by
// category in the order of Categories and in schema order within a category.
// The result does not depend on cfg.Concurrency.
func Generate(s *schema.Schema, cfg Config) ([]Declaration, error) {
	g := newGenerator(s, cfg)

	if err := g.checkIdentifiers(); err != nil {
		return nil, err
	}

	jobs := g.jobs()
	decls := make([]Declaration, len(jobs))
	errs := make([]error, len(jobs))

	if cfg.Concurrency < 2 {
		for i, j := range jobs {
			decls[i], errs[i] = g.runJob(j)
			if errs[i] != nil {
				return nil, errs[i]
			}
		}
		return decls, nil
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.Concurrency)
	for i, j := range jobs {
		eg.Go(func() error {
			decls[i], errs[i] = g.runJob(j)
			return nil
		})
	}
	_ = eg.Wait()

	// report the error of the earliest entity so that it matches a
	// sequential run
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return decls, nil
}
