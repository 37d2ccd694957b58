package types

// Category identifies the schedulable capability of a record type.
//
// The catalog provider derives the category once, while building the
// descriptors, so the hierarchy traversal never performs capability checks
// on the hot path.
type Category int

const (
	// CategoryNone marks a type that is neither a trigger nor a job instance.
	CategoryNone Category = iota

	// CategoryTrigger marks a type representing a schedulable job trigger.
	CategoryTrigger

	// CategoryInstance marks a type representing a job instance.
	CategoryInstance
)

// Classify derives the category of a record type from its capability markers.
//
// A type claiming both capabilities is rejected with ErrAmbiguousCategory:
// silently picking one would misroute rows between the trigger and instance
// key collections.
//
// Parameters:
//   - trigger: Whether the type carries the job trigger capability
//   - instance: Whether the type carries the job instance capability
//
// Returns:
//   - Category: The derived category (CategoryNone on error)
//   - error: ErrAmbiguousCategory when both markers are set
func Classify(trigger, instance bool) (Category, error) {
	switch {
	case trigger && instance:
		return CategoryNone, ErrAmbiguousCategory
	case trigger:
		return CategoryTrigger, nil
	case instance:
		return CategoryInstance, nil
	default:
		return CategoryNone, nil
	}
}

// Participating reports whether the category marks a schedulable record type.
func (c Category) Participating() bool {
	return c == CategoryTrigger || c == CategoryInstance
}

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryTrigger:
		return "Trigger"
	case CategoryInstance:
		return "Instance"
	default:
		return "Unknown"
	}
}
