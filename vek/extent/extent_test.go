package extent

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/voxelmath/blockmath/vek"
)

func TestBounding2(t *testing.T) {
	e := Bounding2(vek.V2[int32](5, -1), vek.V2[int32](2, 3))
	want := New2(vek.V2[int32](2, -1), vek.V2[int32](5, 3))
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("Bounding2 mismatch (-want +got):\n%s", diff)
	}
}

func TestUnionContainsBothInputs(t *testing.T) {
	a := New2(vek.V2[int32](0, 0), vek.V2[int32](4, 4))
	b := New2(vek.V2[int32](2, -3), vek.V2[int32](9, 1))

	u := a.Union(b)
	assert.True(t, u.ContainsExtent(a))
	assert.True(t, u.ContainsExtent(b))
	if diff := cmp.Diff(New2(vek.V2[int32](0, -3), vek.V2[int32](9, 4)), u); diff != "" {
		t.Errorf("Union mismatch (-want +got):\n%s", diff)
	}
}

func TestIntersection(t *testing.T) {
	a := New2(vek.V2[int32](0, 0), vek.V2[int32](4, 4))
	b := New2(vek.V2[int32](2, 2), vek.V2[int32](9, 9))

	i := a.Intersection(b)
	assert.False(t, i.IsEmpty())
	assert.True(t, a.ContainsExtent(i))
	assert.True(t, b.ContainsExtent(i))
	if diff := cmp.Diff(New2(vek.V2[int32](2, 2), vek.V2[int32](4, 4)), i); diff != "" {
		t.Errorf("Intersection mismatch (-want +got):\n%s", diff)
	}

	// Disjoint boxes intersect in an empty extent.
	c := New2(vek.V2[int32](10, 10), vek.V2[int32](11, 11))
	assert.True(t, a.Intersection(c).IsEmpty())
	assert.False(t, a.Intersects(c))
	assert.True(t, a.Intersects(b))
}

func TestContainsPoint(t *testing.T) {
	e := New2(vek.V2[float32](0, 0), vek.V2[float32](1, 1))

	assert.True(t, e.ContainsPoint(vek.V2[float32](0.5, 0.5)))
	// Closed box: the corners are inside.
	assert.True(t, e.ContainsPoint(vek.V2[float32](0, 0)))
	assert.True(t, e.ContainsPoint(vek.V2[float32](1, 1)))
	assert.False(t, e.ContainsPoint(vek.V2[float32](1.5, 0.5)))
	assert.False(t, e.ContainsPoint(vek.V2[float32](0.5, -0.1)))
}

func TestShape(t *testing.T) {
	e := New3(vek.V3[int32](1, 2, 3), vek.V3[int32](4, 6, 8))
	assert.Equal(t, vek.V3[int32](3, 4, 5), e.Shape())
}

func TestExtent3(t *testing.T) {
	a := New3(vek.V3[int32](0, 0, 0), vek.V3[int32](5, 5, 5))
	b := New3(vek.V3[int32](3, 3, 3), vek.V3[int32](8, 8, 8))

	u := a.Union(b)
	assert.True(t, u.ContainsExtent(a))
	assert.True(t, u.ContainsExtent(b))

	i := a.Intersection(b)
	if diff := cmp.Diff(New3(vek.V3[int32](3, 3, 3), vek.V3[int32](5, 5, 5)), i); diff != "" {
		t.Errorf("Intersection mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, i.ContainsPoint(vek.V3[int32](4, 4, 4)))
	assert.False(t, i.ContainsPoint(vek.V3[int32](2, 4, 4)))
}

func TestEmpty(t *testing.T) {
	e := New2(vek.V2[int32](5, 0), vek.V2[int32](0, 5))
	assert.True(t, e.IsEmpty())

	ok := New2(vek.V2[int32](0, 0), vek.V2[int32](0, 0))
	assert.False(t, ok.IsEmpty(), "a degenerate point box is not empty")
}
