package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPager_GroupsInFirstSeenOrder(t *testing.T) {
	questions := []Question{
		{ID: 1, Field: "B"},
		{ID: 2, Field: "A"},
		{ID: 3, Field: "B"},
		{ID: 4, Field: "C"},
		{ID: 5, Field: "A"},
	}

	p := NewPager(questions)

	assert.Equal(t, 3, p.Total())
	assert.Equal(t, []string{"B", "A", "C"}, p.Keys())

	pages := p.Pages()
	require.Len(t, pages, 3)
	assert.Equal(t, []Question{questions[0], questions[2]}, pages[0].Questions)
	assert.Equal(t, []Question{questions[1], questions[4]}, pages[1].Questions)
	assert.Equal(t, []Question{questions[3]}, pages[2].Questions)
}

func TestPager_Navigation(t *testing.T) {
	p := NewPager([]Question{{ID: 1, Field: "A"}, {ID: 2, Field: "B"}})

	cur := p.Current()
	assert.Equal(t, "A", cur.Key)
	assert.True(t, cur.IsFirst())
	assert.False(t, cur.IsLast())

	assert.False(t, p.back())
	assert.Equal(t, 0, p.Current().Index)

	assert.True(t, p.forward())
	assert.Equal(t, "B", p.Current().Key)
	assert.True(t, p.Current().IsLast())

	assert.False(t, p.forward())
	assert.Equal(t, 1, p.Current().Index)

	assert.True(t, p.back())
	assert.Equal(t, 0, p.Current().Index)
}

func TestPager_KeysIsACopy(t *testing.T) {
	p := NewPager([]Question{{ID: 1, Field: "A"}})

	keys := p.Keys()
	keys[0] = "changed"

	assert.Equal(t, "A", p.Current().Key)
}
