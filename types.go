package blazejob

import "github.com/beikov/blaze-job/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the
// `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root blazejob
// package, while still providing a convenient `blazejob.PartitionKey`,
// `blazejob.Catalog`, etc. for users.
type (
	Category          = types.Category
	TypeDescriptor    = types.TypeDescriptor
	InstanceState     = types.InstanceState
	PartitionKey      = types.PartitionKey
	PredicateProvider = types.PredicateProvider
	StateValueMapper  = types.StateValueMapper
)

// Re-export interfaces from the internal types package for convenience.
type (
	Catalog = types.Catalog
	Logger  = types.Logger
)

// Re-export Category constants from the internal types package.
const (
	CategoryNone     = types.CategoryNone
	CategoryTrigger  = types.CategoryTrigger
	CategoryInstance = types.CategoryInstance
)

// Re-export InstanceState constants from the internal types package.
const (
	StateNew             = types.StateNew
	StateRunning         = types.StateRunning
	StateDone            = types.StateDone
	StateFailed          = types.StateFailed
	StateDeadlineReached = types.StateDeadlineReached
	StateDropped         = types.StateDropped
)
