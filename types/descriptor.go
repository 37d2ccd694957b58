package types

// TypeDescriptor describes one record type known to the catalog.
//
// Descriptors form a forest through the Supertype link, mirroring the
// inheritance chain of the underlying record model. Chains are finite and
// acyclic; a nil Supertype marks a hierarchy root.
type TypeDescriptor struct {
	// Name uniquely identifies the type within the catalog.
	Name string

	// Abstract marks a type that cannot be instantiated. Abstract types
	// never become partition keys; they are transparent for coverage.
	Abstract bool

	// Supertype links to the parent type, or nil at the hierarchy root.
	// A supertype outside the catalog terminates hierarchy walks.
	Supertype *TypeDescriptor

	// Category is the schedulable capability of the type.
	Category Category
}

// Participating reports whether the type represents schedulable work.
func (t *TypeDescriptor) Participating() bool {
	return t.Category.Participating()
}

// Concrete reports whether the type can be instantiated.
func (t *TypeDescriptor) Concrete() bool {
	return !t.Abstract
}

// Catalog supplies the complete set of record types known to the system.
//
// Implementations introspect whatever metadata source backs the record
// model:
//   - Static: fixed descriptor list registered at startup
//   - Custom: an ORM metamodel, code generation output, ...
//
// The partition key provider treats the catalog as an opaque, read-only
// source and calls ListTypes exactly once during initialization.
type Catalog interface {
	// ListTypes returns all known record types, concrete and abstract.
	//
	// Implementations should return consistent results for the same
	// underlying model; the returned slice is not mutated by callers.
	ListTypes() []*TypeDescriptor
}
