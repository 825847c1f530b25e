package codegen

import (
	"github.com/Yamashou/gqlbuilder/scalar"
)

// Category is the output unit a declaration belongs to.
type Category string

const (
	CategoryOperations   Category = "operations"
	CategoryObjects      Category = "objects"
	CategoryInterfaces   Category = "interfaces"
	CategoryUnions       Category = "unions"
	CategoryEnums        Category = "enums"
	CategoryInputObjects Category = "inputObjects"
)

// Categories lists every category in output order.
var Categories = []Category{
	CategoryOperations,
	CategoryObjects,
	CategoryInterfaces,
	CategoryUnions,
	CategoryEnums,
	CategoryInputObjects,
}

// Declaration is the Go source generated for one schema entity.
type Declaration struct {
	Category Category
	// Name is the schema name of the entity.
	Name string
	Text string
	// Imports holds the import paths Text refers to, sorted.
	Imports []string
}

type Config struct {
	// Scalars resolves scalar types. When nil, only the built-in scalars
	// are mapped.
	Scalars *scalar.Mapper
	// RuntimeImport is the import path of the selection runtime. Defaults
	// to scalar.DefaultRuntimeImport.
	RuntimeImport string
	// Concurrency bounds the number of entities generated in parallel.
	// Values below 2 generate sequentially.
	Concurrency int
}
