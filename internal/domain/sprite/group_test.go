package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_AddRemoveHas(t *testing.T) {
	a := wall(0, 0)
	b := wall(32, 0)
	g := NewGroup(a, b)

	require.Equal(t, 2, g.Len())
	assert.True(t, g.Has(a))
	assert.True(t, a.InGroup(g))

	g.Remove(a)
	assert.False(t, g.Has(a), "has is false immediately after remove")
	assert.False(t, a.InGroup(g))
	assert.Equal(t, 1, g.Len())

	g.Remove(a)
	assert.Equal(t, 1, g.Len(), "second remove is a no-op")
}

func TestGroup_AddIgnoresDuplicatesAndDead(t *testing.T) {
	a := wall(0, 0)
	dead := wall(0, 0)
	dead.Kill()

	g := NewGroup(a, a, nil, dead)

	assert.Equal(t, 1, g.Len())
	assert.False(t, g.Has(dead))
	assert.False(t, g.Has(nil))
}

func TestGroup_OnRemoveFiresBeforeDrop(t *testing.T) {
	a := wall(0, 0)
	g := NewGroup(a)

	var seen []Entity
	var stillMember bool
	g.OnRemove = func(e Entity) {
		seen = append(seen, e)
		stillMember = g.Has(e)
	}

	g.Remove(a)
	g.Remove(a)

	require.Len(t, seen, 1, "non-member removal does not notify")
	assert.Same(t, a, seen[0])
	assert.True(t, stillMember)
}

func TestGroup_KillLeavesEveryGroup(t *testing.T) {
	p := testPlayer(0, 0)
	colliders := NewGroup(p)
	all := NewGroup(p)

	assert.Equal(t, 2, p.Groups())

	assert.True(t, p.Kill())
	assert.False(t, colliders.Has(p))
	assert.False(t, all.Has(p))
	assert.Equal(t, 0, p.Groups())

	assert.False(t, p.Kill(), "kill is idempotent")
}

func TestGroup_EachSnapshot(t *testing.T) {
	t.Run("member removed before its turn is skipped", func(t *testing.T) {
		a, b, c := wall(0, 0), wall(32, 0), wall(64, 0)
		g := NewGroup(a, b, c)

		var visited []Entity
		g.Each(func(e Entity) {
			visited = append(visited, e)
			if e == Entity(a) {
				g.Remove(b)
			}
		})

		assert.Equal(t, []Entity{a, c}, visited)
	})

	t.Run("removing the current member does not skip the next", func(t *testing.T) {
		a, b, c := wall(0, 0), wall(32, 0), wall(64, 0)
		g := NewGroup(a, b, c)

		var visited []Entity
		g.Each(func(e Entity) {
			visited = append(visited, e)
			g.Remove(e)
		})

		assert.Equal(t, []Entity{a, b, c}, visited)
		assert.Equal(t, 0, g.Len())
	})

	t.Run("members added during the pass wait for the next pass", func(t *testing.T) {
		a := wall(0, 0)
		late := wall(32, 0)
		g := NewGroup(a)

		count := 0
		g.Each(func(e Entity) {
			count++
			g.Add(late)
		})

		assert.Equal(t, 1, count)
		assert.True(t, g.Has(late))
	})
}

type countingEntity struct {
	Static
	updates int
}

func (c *countingEntity) Update(_ *Tick) { c.updates++ }

func TestGroup_UpdateSkipsEntitiesWithoutUpdate(t *testing.T) {
	counter := &countingEntity{}
	counter.Init(0, 0, KindScenery, box(4, 4), 1)
	still := wall(10, 10)

	g := NewGroup(counter, still)
	g.Update(NewTick(nil, Rect{}))
	g.Update(NewTick(nil, Rect{}))

	assert.Equal(t, 2, counter.updates)
}

func TestGroup_ClearAndKillAll(t *testing.T) {
	a, b := wall(0, 0), wall(32, 0)
	g := NewGroup(a, b)
	other := NewGroup(a)

	removed := 0
	g.OnRemove = func(Entity) { removed++ }

	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 2, removed)
	assert.True(t, other.Has(a), "clear only affects this group")
	assert.False(t, a.Dead())

	g.Add(a, b)
	g.KillAll()
	assert.True(t, a.Dead())
	assert.False(t, other.Has(a))
}

func TestGroup_EntitiesAndLast(t *testing.T) {
	g := NewGroup()
	assert.Nil(t, g.Last())

	a, b := wall(0, 0), wall(32, 0)
	g.Add(a, b)

	assert.Equal(t, []Entity{a, b}, g.Entities())
	assert.Same(t, b, g.Last())
}

func TestGroup_ZeroValueUsable(t *testing.T) {
	var g Group
	a := wall(0, 0)

	g.Add(a)
	assert.True(t, g.Has(a))
}
