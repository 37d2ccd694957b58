package blazejob

import (
	"errors"

	"github.com/beikov/blaze-job/types"
)

// Sentinel errors returned by the partition key provider.
var (
	// ErrCatalogRequired is returned when the type catalog is nil.
	ErrCatalogRequired = errors.New("type catalog is required")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnclassifiedType is returned when a representative type has no
	// category but covers participating subtypes. In a well-formed catalog
	// the schedulable capability is inherited, so this indicates broken
	// catalog metadata.
	ErrUnclassifiedType = errors.New("representative type has no category")

	// ErrAmbiguousCategory is returned when a type claims both the trigger
	// and the job instance capability.
	ErrAmbiguousCategory = types.ErrAmbiguousCategory
)
