// Package blazejob computes the partition keys a job execution engine needs
// to query schedulable records efficiently.
//
// Given a catalog of record types organized in a single-rooted, possibly
// multi-level inheritance hierarchy, NewPartitionKeyProvider flattens the
// hierarchy once at startup and emits one partition key per concrete
// schedulable type: job triggers into one collection, job instances into
// another. When several concrete types share a non-abstract ancestor's
// storage region, the ancestor's key carries a type-discriminating
// predicate so a single query against the shared region can still isolate
// the ancestor's own rows.
//
// # Quick Start
//
//	descriptors := []*blazejob.TypeDescriptor{ /* from your record model */ }
//	cat, err := catalog.NewStatic(descriptors)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := blazejob.DefaultConfig()
//	provider, err := blazejob.NewPartitionKeyProvider(cat, &cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	triggerKeys := provider.TriggerPartitionKeys()
//	instanceKeys := provider.InstancePartitionKeys()
//
// The provider runs exactly once and holds no record data. The returned
// collections never change afterwards and are safe for unsynchronized
// concurrent reads by the execution engine.
//
// # Failure Semantics
//
// Construction fails fast: a nil catalog, an invalid configuration or a
// representative type that cannot be classified abort initialization with
// an error and no partial output. Callers must treat any failure as fatal
// to system bring-up; there are no recoverable or retryable errors in this
// component.
package blazejob
