// Package types provides core type definitions and interfaces for the
// blaze-job library.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the main blazejob package and its internal
// implementations.
//
// Key types:
//   - TypeDescriptor: One record type known to the catalog
//   - Category: Trigger/instance classification of a record type
//   - PartitionKey: Named, queryable grouping descriptor for record types
//   - InstanceState: Abstract processing state of a schedulable record
//   - Logger: Structured logging interface
package types
