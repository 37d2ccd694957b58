// Package catalog provides Catalog implementations for the blaze-job
// library.
//
// A catalog supplies the complete set of record types known to the system.
// The Static implementation covers the common case where the record model
// is registered once at startup; custom implementations can introspect an
// ORM metamodel or generated metadata instead.
package catalog
