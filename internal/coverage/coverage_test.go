package coverage

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beikov/blaze-job/types"
)

func newType(name string, abstract bool, super *types.TypeDescriptor, category types.Category) *types.TypeDescriptor {
	return &types.TypeDescriptor{
		Name:      name,
		Abstract:  abstract,
		Supertype: super,
		Category:  category,
	}
}

func names(descriptors []*types.TypeDescriptor) []string {
	result := make([]string, len(descriptors))
	for i, d := range descriptors {
		result[i] = d.Name
	}
	slices.Sort(result)

	return result
}

func TestFlattenFlatHierarchy(t *testing.T) {
	t.Parallel()

	a := newType("A", false, nil, types.CategoryTrigger)
	b := newType("B", false, nil, types.CategoryInstance)
	c := newType("C", false, nil, types.CategoryNone)

	cov := Flatten([]*types.TypeDescriptor{a, b, c})

	require.Len(t, cov, 2)
	require.Equal(t, []string{"A"}, names(cov[a]))
	require.Equal(t, []string{"B"}, names(cov[b]))
	require.NotContains(t, cov, c)
}

func TestFlattenAbstractRoot(t *testing.T) {
	t.Parallel()

	root := newType("Root", true, nil, types.CategoryNone)
	left := newType("Left", false, root, types.CategoryTrigger)
	right := newType("Right", false, root, types.CategoryTrigger)

	cov := Flatten([]*types.TypeDescriptor{root, left, right})

	// Abstract types never become representatives; each concrete child
	// stays keyed at itself.
	require.Len(t, cov, 2)
	require.NotContains(t, cov, root)
	require.Equal(t, []string{"Left"}, names(cov[left]))
	require.Equal(t, []string{"Right"}, names(cov[right]))
}

func TestFlattenThreeLevelHierarchy(t *testing.T) {
	t.Parallel()

	root := newType("Root", true, nil, types.CategoryNone)
	middle := newType("Middle", false, root, types.CategoryInstance)
	leaf1 := newType("Leaf1", false, middle, types.CategoryInstance)
	leaf2 := newType("Leaf2", false, middle, types.CategoryInstance)

	cov := Flatten([]*types.TypeDescriptor{root, middle, leaf1, leaf2})

	require.Len(t, cov, 3)
	require.Equal(t, []string{"Leaf1", "Leaf2", "Middle"}, names(cov[middle]))
	require.Equal(t, []string{"Leaf1"}, names(cov[leaf1]))
	require.Equal(t, []string{"Leaf2"}, names(cov[leaf2]))
}

func TestFlattenAbstractMiddleIsTransparent(t *testing.T) {
	t.Parallel()

	top := newType("Top", false, nil, types.CategoryTrigger)
	middle := newType("Middle", true, top, types.CategoryNone)
	leaf := newType("Leaf", false, middle, types.CategoryTrigger)

	cov := Flatten([]*types.TypeDescriptor{top, middle, leaf})

	// The abstract middle does not key anything, but the leaf still
	// propagates through it into the concrete top.
	require.Len(t, cov, 2)
	require.Equal(t, []string{"Leaf", "Top"}, names(cov[top]))
	require.Equal(t, []string{"Leaf"}, names(cov[leaf]))
}

func TestFlattenMultipleBranches(t *testing.T) {
	t.Parallel()

	top := newType("Top", false, nil, types.CategoryInstance)
	branchA := newType("BranchA", true, top, types.CategoryNone)
	branchB := newType("BranchB", false, top, types.CategoryInstance)
	leafA := newType("LeafA", false, branchA, types.CategoryInstance)
	leafB := newType("LeafB", false, branchB, types.CategoryInstance)

	cov := Flatten([]*types.TypeDescriptor{top, branchA, branchB, leafA, leafB})

	require.Equal(t, []string{"BranchB", "LeafA", "LeafB", "Top"}, names(cov[top]))
	require.Equal(t, []string{"BranchB", "LeafB"}, names(cov[branchB]))
	require.Equal(t, []string{"LeafA"}, names(cov[leafA]))
	require.Equal(t, []string{"LeafB"}, names(cov[leafB]))
	require.NotContains(t, cov, branchA)
}

func TestFlattenOrderInsensitive(t *testing.T) {
	t.Parallel()

	root := newType("Root", true, nil, types.CategoryNone)
	middle := newType("Middle", false, root, types.CategoryInstance)
	leaf1 := newType("Leaf1", false, middle, types.CategoryInstance)
	leaf2 := newType("Leaf2", false, middle, types.CategoryInstance)

	all := []*types.TypeDescriptor{root, middle, leaf1, leaf2}
	reversed := []*types.TypeDescriptor{leaf2, leaf1, middle, root}

	forward := Flatten(all)
	backward := Flatten(reversed)

	require.Len(t, backward, len(forward))
	for representative, covered := range forward {
		require.Equal(t, names(covered), names(backward[representative]))
	}
}

func TestFlattenSupertypeOutsideCatalog(t *testing.T) {
	t.Parallel()

	// A framework base type that is not part of the known catalog.
	external := newType("FrameworkBase", false, nil, types.CategoryNone)
	leaf := newType("Leaf", false, external, types.CategoryTrigger)

	cov := Flatten([]*types.TypeDescriptor{leaf})

	require.Len(t, cov, 1)
	require.NotContains(t, cov, external)
	require.Equal(t, []string{"Leaf"}, names(cov[leaf]))
}

func TestFlattenAbstractOnlyBranch(t *testing.T) {
	t.Parallel()

	root := newType("Root", true, nil, types.CategoryNone)
	abstractLeaf := newType("AbstractLeaf", true, root, types.CategoryInstance)

	cov := Flatten([]*types.TypeDescriptor{root, abstractLeaf})

	require.Empty(t, cov)
}

func TestFlattenNonParticipatingAncestorAccumulates(t *testing.T) {
	t.Parallel()

	// A concrete ancestor without a category still collects its
	// participating descendants; the builder decides how to treat it.
	middle := newType("Middle", false, nil, types.CategoryNone)
	leaf := newType("Leaf", false, middle, types.CategoryInstance)

	cov := Flatten([]*types.TypeDescriptor{middle, leaf})

	require.Equal(t, []string{"Leaf"}, names(cov[middle]))
	require.Equal(t, []string{"Leaf"}, names(cov[leaf]))
}
