// Package coverage flattens a record type hierarchy into the set of
// partition key representatives and the concrete types each representative's
// storage region must account for.
package coverage

import "github.com/beikov/blaze-job/types"

// Map associates each representative type with the list of concrete
// participating types reachable at or beneath it. Members appear in catalog
// order; a representative is a member of its own list when it participates
// itself.
type Map map[*types.TypeDescriptor][]*types.TypeDescriptor

// Flatten walks the complete type catalog once and produces the coverage
// map the partition key builder consumes.
//
// Every concrete participating type seeds its own coverage list and is then
// merged into the list of every non-abstract ancestor found inside the
// catalog. Abstract ancestors are transparent: they never become
// representatives, but they do not stop the walk either. An ancestor
// outside the catalog (e.g. a generic framework base type) terminates the
// walk.
//
// The accumulation is a union: a non-abstract ancestor with several
// descendant branches ends up with the union of all concrete participating
// types below it, regardless of catalog iteration order. Abstract-only
// branches never enter the map.
//
// Parameters:
//   - all: The complete catalog of known record types, concrete and abstract
//
// Returns:
//   - Map: Coverage map keyed by representative type
func Flatten(all []*types.TypeDescriptor) Map {
	known := make(map[*types.TypeDescriptor]struct{}, len(all))
	for _, t := range all {
		known[t] = struct{}{}
	}

	seen := make(map[*types.TypeDescriptor]map[*types.TypeDescriptor]struct{}, len(all))
	result := make(Map, len(all))

	add := func(representative, covered *types.TypeDescriptor) {
		members, ok := seen[representative]
		if !ok {
			members = make(map[*types.TypeDescriptor]struct{})
			seen[representative] = members
		}
		if _, ok := members[covered]; ok {
			return
		}
		members[covered] = struct{}{}
		result[representative] = append(result[representative], covered)
	}

	for _, t := range all {
		if t.Abstract || !t.Participating() {
			continue
		}

		// Types are always covered by themselves.
		add(t, t)

		for ancestor := t.Supertype; ancestor != nil; ancestor = ancestor.Supertype {
			if _, ok := known[ancestor]; !ok {
				break
			}
			if ancestor.Abstract {
				continue
			}
			add(ancestor, t)
		}
	}

	return result
}
