package catalog

import "errors"

// ErrDuplicateType indicates two descriptors in a catalog share a name.
var ErrDuplicateType = errors.New("duplicate type name in catalog")

// ErrCyclicHierarchy indicates a supertype chain loops back on itself.
var ErrCyclicHierarchy = errors.New("cyclic supertype chain in catalog")
