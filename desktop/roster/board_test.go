package roster

import (
	"fmt"
	"sort"
	"testing"

	"github.com/Acronica/Team-Maker/dependencies/mocks"
	"github.com/Acronica/Team-Maker/dependencies/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, names ...string) *Board {
	t.Helper()

	b := NewBoard(mocks.NewRandom())
	for _, n := range names {
		require.NoError(t, b.Add(n))
	}
	return b
}

// sortedNames is the multiset the reconciler invariant is checked against.
func sortedNames(b *Board) []string {
	names := b.Names()
	sort.Strings(names)
	return names
}

func TestAdd(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice", "bob")

	assert.Equal(t, "alice", b.Name(PoolSlot(0)))
	assert.Equal(t, "bob", b.Name(PoolSlot(1)))
	assert.ErrorIs(t, b.Add("alice"), ErrDuplicateName)
	assert.Equal(t, []string{"alice", "bob"}, sortedNames(b))
}

func TestDrag_PoolToEmptyGrid(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice")

	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))
	assert.Equal(t, "alice", b.Name(GridSlot(0)))
	assert.Empty(t, b.Name(PoolSlot(0)))
	assert.Equal(t, []string{"alice"}, sortedNames(b))
}

func TestDrag_PoolToOccupiedGridDisplacesIntoPool(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice", "bob")
	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))

	// bob drops onto alice's slot; alice goes back to the pool.
	require.NoError(t, b.Drag(PoolSlot(1), GridSlot(0)))

	assert.Equal(t, "bob", b.Name(GridSlot(0)))
	assert.Empty(t, b.Name(PoolSlot(1)))
	assert.Equal(t, "alice", b.Name(PoolSlot(0)))
	assert.Equal(t, []string{"alice", "bob"}, sortedNames(b))
}

func TestDrag_GridToGridSwaps(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice", "bob")
	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))
	require.NoError(t, b.Drag(PoolSlot(1), GridSlot(3)))

	require.NoError(t, b.Drag(GridSlot(0), GridSlot(3)))

	assert.Equal(t, "bob", b.Name(GridSlot(0)))
	assert.Equal(t, "alice", b.Name(GridSlot(3)))
	assert.Equal(t, []string{"alice", "bob"}, sortedNames(b))
}

func TestDrag_GridToPool(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice", "bob")
	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))

	// Drop into an empty pool slot moves the name back.
	require.NoError(t, b.Drag(GridSlot(0), PoolSlot(5)))
	assert.Equal(t, "alice", b.Name(PoolSlot(5)))
	assert.Empty(t, b.Name(GridSlot(0)))

	// Drop onto an occupied pool slot swaps, never deletes.
	require.NoError(t, b.Drag(PoolSlot(5), GridSlot(2)))
	require.NoError(t, b.Drag(GridSlot(2), PoolSlot(1)))
	assert.Equal(t, "alice", b.Name(PoolSlot(1)))
	assert.Equal(t, "bob", b.Name(GridSlot(2)))
	assert.Equal(t, []string{"alice", "bob"}, sortedNames(b))
}

func TestDrag_PoolToPool(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice", "bob")

	require.NoError(t, b.Drag(PoolSlot(0), PoolSlot(7)))
	assert.Equal(t, "alice", b.Name(PoolSlot(7)))

	require.NoError(t, b.Drag(PoolSlot(7), PoolSlot(1)))
	assert.Equal(t, "alice", b.Name(PoolSlot(1)))
	assert.Equal(t, "bob", b.Name(PoolSlot(7)))
	assert.Equal(t, []string{"alice", "bob"}, sortedNames(b))
}

func TestDrag_LockedSlots(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice", "bob")
	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))
	require.NoError(t, b.ToggleLock(0))

	assert.ErrorIs(t, b.Drag(GridSlot(0), GridSlot(1)), ErrLockedSlot, "locked slot cannot be picked up")
	assert.ErrorIs(t, b.Drag(PoolSlot(1), GridSlot(0)), ErrLockedSlot, "locked slot cannot be dropped on")

	require.NoError(t, b.ToggleLock(0))
	assert.NoError(t, b.Drag(GridSlot(0), GridSlot(1)))
}

func TestDrag_Errors(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice")

	assert.ErrorIs(t, b.Drag(PoolSlot(3), GridSlot(0)), ErrEmptySource)
	assert.ErrorIs(t, b.Drag(GridSlot(-1), GridSlot(0)), ErrBadSlot)
	assert.ErrorIs(t, b.Drag(PoolSlot(0), PoolSlot(99)), ErrBadSlot)
	assert.NoError(t, b.Drag(PoolSlot(0), PoolSlot(0)), "dropping a name on itself is a no-op")
}

func TestToggleLock_OnlyOccupiedSlots(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice")

	assert.ErrorIs(t, b.ToggleLock(3), ErrEmptySource)
	assert.False(t, b.Locked(GridSlot(3)))
	assert.ErrorIs(t, b.ToggleLock(GridSlots), ErrBadSlot)

	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(3)))
	require.NoError(t, b.ToggleLock(3))
	assert.True(t, b.Locked(GridSlot(3)))
}

func TestRename(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice", "bob")

	assert.ErrorIs(t, b.Rename(PoolSlot(0), "bob"), ErrDuplicateName)
	assert.NoError(t, b.Rename(PoolSlot(0), "Bob"), "duplicate check is case-sensitive")
	require.NoError(t, b.Rename(PoolSlot(1), "carol"))
	assert.Equal(t, "carol", b.Name(PoolSlot(1)))

	// Renaming a slot to its own current value is allowed.
	assert.NoError(t, b.Rename(PoolSlot(1), "carol"))

	// Empty name clears the slot.
	require.NoError(t, b.Rename(PoolSlot(1), ""))
	assert.Empty(t, b.Name(PoolSlot(1)))
}

func TestReturnAllToPool(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice", "bob", "carol")
	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))
	require.NoError(t, b.Drag(PoolSlot(1), GridSlot(1)))
	require.NoError(t, b.ToggleLock(1))

	b.ReturnAllToPool()

	assert.Empty(t, b.Name(GridSlot(0)))
	assert.Equal(t, "bob", b.Name(GridSlot(1)), "locked slot stays on the grid")
	assert.Equal(t, []string{"alice", "bob", "carol"}, sortedNames(b))
}

func TestLoadPool(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "gridder")
	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))

	b.LoadPool([]string{"alice", "bob", "gridder", "alice", ""})

	assert.Equal(t, "alice", b.Name(PoolSlot(0)))
	assert.Equal(t, "bob", b.Name(PoolSlot(1)))
	assert.Equal(t, MinPoolSlots, b.PoolSize(), "pool pads back to the minimum")
	assert.Equal(t, []string{"alice", "bob", "gridder"}, sortedNames(b), "grid names excluded from the fetched pool")
}

func TestTeamExtraction(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "t1-top", "t2-top", "t1-mid")
	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))
	require.NoError(t, b.Drag(PoolSlot(1), GridSlot(1)))
	require.NoError(t, b.Drag(PoolSlot(2), GridSlot(4)))

	assert.Equal(t, []string{"t1-top", "t1-mid"}, b.Team1())
	assert.Equal(t, []string{"t2-top"}, b.Team2())
}

// TestRandomOperationSequence drives the board through a long random mix of
// operations and checks the pool+grid name multiset after every step.
func TestRandomOperationSequence(t *testing.T) {
	t.Parallel()

	rng := random.NewSystemRandom(7)
	b := NewBoard(rng)

	names := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		n := fmt.Sprintf("player-%02d", i)
		require.NoError(t, b.Add(n))
		names = append(names, n)
	}
	sort.Strings(names)

	randomRef := func() SlotRef {
		if rng.Intn(2) == 0 {
			return GridSlot(rng.Intn(GridSlots))
		}
		return PoolSlot(rng.Intn(b.PoolSize()))
	}

	for step := 0; step < 400; step++ {
		switch rng.Intn(7) {
		case 0:
			_ = b.Drag(randomRef(), randomRef())
		case 1:
			ref := randomRef()
			old := b.Name(ref)
			fresh := fmt.Sprintf("renamed-%03d", step)
			if old != "" && b.Rename(ref, fresh) == nil {
				names[sort.SearchStrings(names, old)] = fresh
				sort.Strings(names)
			}
		case 2:
			b.ShuffleAll()
		case 3:
			b.ShuffleByPosition()
		case 4:
			b.ShuffleTeamPositions()
		case 5:
			_ = b.ToggleLock(rng.Intn(GridSlots))
		case 6:
			b.LoadPool(names)
		}
		require.Equal(t, names, sortedNames(b), "after step %d", step)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "alice")
	require.NoError(t, b.Drag(PoolSlot(0), GridSlot(0)))
	require.NoError(t, b.ToggleLock(0))

	b.Reset()

	assert.Empty(t, b.Names())
	assert.False(t, b.Locked(GridSlot(0)))
	assert.Equal(t, MinPoolSlots, b.PoolSize())
}
