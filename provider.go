package blazejob

import (
	"fmt"

	"github.com/beikov/blaze-job/internal/coverage"
	"github.com/beikov/blaze-job/internal/logger"
	"github.com/beikov/blaze-job/types"
)

// PartitionKeyProvider computes the partition keys the job execution engine
// uses to query schedulable records.
//
// The provider flattens the record type hierarchy exactly once, at
// construction time, and emits the minimal set of partition keys: one per
// concrete schedulable type, keyed at the type itself. A key whose storage
// region also covers other concrete subtypes carries a type-discriminating
// predicate; a key covering exactly its own rows does not.
//
// The resulting collections never change after construction and may be read
// concurrently without synchronization.
type PartitionKeyProvider struct {
	triggerKeys  []types.PartitionKey
	instanceKeys []types.PartitionKey
}

// NewPartitionKeyProvider builds the trigger and instance partition key
// collections from the given type catalog.
//
// Construction fails fast: a nil catalog, an invalid configuration or a
// representative type that cannot be classified abort with an error and no
// partial output. This runs once at startup; callers must treat any failure
// as fatal to system bring-up.
//
// Parameters:
//   - catalog: Read-only record type catalog
//   - cfg: Attribute bindings; nil uses DefaultConfig, unset fields are defaulted
//   - opts: Optional logger and state value mappers
//
// Returns:
//   - *PartitionKeyProvider: Provider with both key collections populated
//   - error: Fatal initialization error
func NewPartitionKeyProvider(catalog types.Catalog, cfg *Config, opts ...Option) (*PartitionKeyProvider, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	options := providerOptions{
		logger:              logger.NewNop(),
		triggerStateMapper:  types.IdentityStateValueMapper,
		instanceStateMapper: types.IdentityStateValueMapper,
	}
	for _, opt := range opts {
		opt(&options)
	}

	var config Config
	if cfg != nil {
		config = *cfg
	}
	ApplyDefaults(&config)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	allTypes := catalog.ListTypes()
	cov := coverage.Flatten(allTypes)

	p := &PartitionKeyProvider{}
	// Iterate the catalog rather than the map so key order is deterministic.
	for _, representative := range allTypes {
		covered, ok := cov[representative]
		if !ok {
			continue
		}

		// The predicate is needed exactly when the representative's
		// storage region covers more than its own rows.
		var predicate types.PredicateProvider
		if len(covered) > 1 {
			predicate = types.TypePredicate(representative.Name)
		}

		switch representative.Category {
		case types.CategoryTrigger:
			key := buildKey(representative, config.Trigger, options.triggerStateMapper, predicate)
			p.triggerKeys = append(p.triggerKeys, key)
		case types.CategoryInstance:
			key := buildKey(representative, config.Instance, options.instanceStateMapper, predicate)
			p.instanceKeys = append(p.instanceKeys, key)
		default:
			return nil, fmt.Errorf("%w: %s covers %d participating subtype(s)",
				ErrUnclassifiedType, representative.Name, len(covered))
		}
	}

	options.logger.Info("partition keys computed",
		"knownTypes", len(allTypes),
		"triggerKeys", len(p.triggerKeys),
		"instanceKeys", len(p.instanceKeys),
	)

	return p, nil
}

// buildKey populates one partition key from the representative type and the
// category's attribute bindings.
func buildKey(representative *types.TypeDescriptor, bindings AttributeBindings, mapper types.StateValueMapper, predicate types.PredicateProvider) types.PartitionKey {
	return types.PartitionKey{
		Name:                   representative.Name,
		Category:               representative.Category,
		IDAttribute:            bindings.IDAttribute,
		PartitionKeyAttribute:  bindings.PartitionKeyAttribute,
		ScheduleAttribute:      bindings.ScheduleAttribute,
		LastExecutionAttribute: bindings.LastExecutionAttribute,
		StateAttribute:         bindings.StateAttribute,
		StateValueMapper:       mapper,
		Predicate:              predicate,
	}
}

// TriggerPartitionKeys returns the partition keys covering job trigger
// types.
//
// Returns:
//   - []types.PartitionKey: Copy of the trigger key collection
func (p *PartitionKeyProvider) TriggerPartitionKeys() []types.PartitionKey {
	result := make([]types.PartitionKey, len(p.triggerKeys))
	copy(result, p.triggerKeys)

	return result
}

// InstancePartitionKeys returns the partition keys covering job instance
// types.
//
// Returns:
//   - []types.PartitionKey: Copy of the instance key collection
func (p *PartitionKeyProvider) InstancePartitionKeys() []types.PartitionKey {
	result := make([]types.PartitionKey, len(p.instanceKeys))
	copy(result, p.instanceKeys)

	return result
}
