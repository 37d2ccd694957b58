package types

import "fmt"

// PredicateProvider produces a type-discriminating predicate fragment for a
// query alias. The fragment narrows a storage region shared by several
// concrete types to rows whose runtime type equals the partition key's own
// type.
type PredicateProvider func(alias string) string

// StateValueMapper converts the abstract instance state into the value the
// underlying storage holds in the state attribute.
type StateValueMapper func(state InstanceState) any

// PartitionKey is a named, queryable grouping descriptor covering one or
// more concrete record types.
//
// A partition key carries everything the execution engine needs to build a
// storage query for one region of schedulable records: the attribute names
// used for identity, scheduling and state tracking, the state value
// mapping, and an optional predicate isolating the key's own rows when the
// region is shared with other concrete subtypes.
//
// Keys are immutable after construction and safe for unsynchronized
// concurrent reads.
type PartitionKey struct {
	// Name is the represented type's name.
	Name string

	// Category routes the key into the trigger or instance collection.
	Category Category

	// IDAttribute names the identifying attribute.
	IDAttribute string

	// PartitionKeyAttribute names the attribute used for partition bucketing.
	PartitionKeyAttribute string

	// ScheduleAttribute names the schedule time attribute.
	ScheduleAttribute string

	// LastExecutionAttribute names the last execution time attribute.
	LastExecutionAttribute string

	// StateAttribute names the state attribute.
	StateAttribute string

	// StateValueMapper maps InstanceState values to storage-native values.
	StateValueMapper StateValueMapper

	// Predicate is non-nil exactly when the key's storage region covers
	// additional concrete subtypes and queries must discriminate by
	// runtime type.
	Predicate PredicateProvider
}

// HasPredicate reports whether the key needs type discrimination.
func (k PartitionKey) HasPredicate() bool {
	return k.Predicate != nil
}

// TypePredicate builds the canonical type-discriminating predicate for a
// type name.
//
// Given a query alias, the returned provider produces a fragment of the
// form "TYPE(<alias>) = <name>", asserting that the runtime type of the row
// at the alias equals the named type.
//
// Parameters:
//   - name: The concrete type name to discriminate on
//
// Returns:
//   - PredicateProvider: Fragment builder for any query alias
func TypePredicate(name string) PredicateProvider {
	return func(alias string) string {
		return fmt.Sprintf("TYPE(%s) = %s", alias, name)
	}
}

// IdentityStateValueMapper returns the state unchanged. It is the default
// mapping for storage schemas that persist the abstract enum directly.
func IdentityStateValueMapper(state InstanceState) any {
	return state
}
