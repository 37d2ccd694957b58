package catalog

import (
	"fmt"
	"sync"

	"github.com/beikov/blaze-job/types"
)

// Static implements a type catalog with a fixed list of record types.
type Static struct {
	mu    sync.RWMutex
	types []*types.TypeDescriptor
}

var _ types.Catalog = (*Static)(nil)

// NewStatic creates a new static catalog from a fixed descriptor list.
//
// The descriptors are validated once: names must be unique and every
// supertype chain must be acyclic. Supertypes pointing outside the catalog
// are allowed; hierarchy walks simply terminate there.
//
// Parameters:
//   - descriptors: Complete list of known record types, concrete and abstract
//
// Returns:
//   - *Static: Initialized catalog
//   - error: ErrDuplicateType or ErrCyclicHierarchy on invalid input
//
// Example:
//
//	base, _ := catalog.Describe("AbstractJob", true, nil, false, false)
//	email, _ := catalog.Describe("EmailJob", false, base, false, true)
//	cat, err := catalog.NewStatic([]*types.TypeDescriptor{base, email})
//	if err != nil { /* handle */ }
func NewStatic(descriptors []*types.TypeDescriptor) (*Static, error) {
	if err := validate(descriptors); err != nil {
		return nil, err
	}

	s := &Static{
		types: make([]*types.TypeDescriptor, len(descriptors)),
	}
	copy(s.types, descriptors)

	return s, nil
}

// ListTypes returns the registered record types.
//
// Returns:
//   - []*types.TypeDescriptor: Copy of the descriptor list
func (s *Static) ListTypes() []*types.TypeDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*types.TypeDescriptor, len(s.types))
	copy(result, s.types)

	return result
}

// Update replaces the descriptor list.
//
// This allows tests to simulate catalog changes between provider runs.
//
// Parameters:
//   - descriptors: New list of record types
//
// Returns:
//   - error: Validation error; the previous list stays in place on failure
func (s *Static) Update(descriptors []*types.TypeDescriptor) error {
	if err := validate(descriptors); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.types = make([]*types.TypeDescriptor, len(descriptors))
	copy(s.types, descriptors)

	return nil
}

// Describe builds a TypeDescriptor from capability markers.
//
// The markers mirror how the record model identifies schedulable types: a
// type either carries the job trigger capability, the job instance
// capability, or neither. A type claiming both is rejected with
// types.ErrAmbiguousCategory.
//
// Parameters:
//   - name: Unique type name
//   - abstract: Whether the type cannot be instantiated
//   - supertype: Parent descriptor, nil at a hierarchy root
//   - trigger: Whether the type carries the trigger capability
//   - instance: Whether the type carries the instance capability
//
// Returns:
//   - *types.TypeDescriptor: Classified descriptor
//   - error: Classification error
func Describe(name string, abstract bool, supertype *types.TypeDescriptor, trigger, instance bool) (*types.TypeDescriptor, error) {
	category, err := types.Classify(trigger, instance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &types.TypeDescriptor{
		Name:      name,
		Abstract:  abstract,
		Supertype: supertype,
		Category:  category,
	}, nil
}

func validate(descriptors []*types.TypeDescriptor) error {
	names := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		if _, ok := names[d.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateType, d.Name)
		}
		names[d.Name] = struct{}{}
	}

	// Floyd cycle detection over each supertype chain.
	for _, d := range descriptors {
		slow, fast := d, d
		for fast != nil && fast.Supertype != nil {
			slow = slow.Supertype
			fast = fast.Supertype.Supertype
			if slow == fast {
				return fmt.Errorf("%w: %s", ErrCyclicHierarchy, d.Name)
			}
		}
	}

	return nil
}
