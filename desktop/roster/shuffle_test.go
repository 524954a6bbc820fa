package roster

import (
	"testing"

	"github.com/Acronica/Team-Maker/dependencies/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOnGrid(t *testing.T, b *Board, slots map[int]string) {
	t.Helper()

	for _, name := range slots {
		require.NoError(t, b.Add(name))
	}
	for i, name := range slots {
		require.NoError(t, b.Drag(findInPool(b, name), GridSlot(i)))
	}
}

func findInPool(b *Board, name string) SlotRef {
	for i := 0; i < b.PoolSize(); i++ {
		if b.Name(PoolSlot(i)) == name {
			return PoolSlot(i)
		}
	}
	return PoolSlot(-1)
}

func TestShuffleAll_UniformPermutation(t *testing.T) {
	t.Parallel()

	b := NewBoard(mocks.NewRandom(0, 0, 0))
	placeOnGrid(t, b, map[int]string{0: "a", 1: "b", 2: "c", 3: "d"})

	b.ShuffleAll()

	// Fisher-Yates with scripted j=0 at each step rotates the names.
	assert.Equal(t, "b", b.Name(GridSlot(0)))
	assert.Equal(t, "c", b.Name(GridSlot(1)))
	assert.Equal(t, "d", b.Name(GridSlot(2)))
	assert.Equal(t, "a", b.Name(GridSlot(3)))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, b.Names())
}

func TestShuffleAll_SkipsLockedAndPool(t *testing.T) {
	t.Parallel()

	b := NewBoard(mocks.NewRandom(0, 0, 0, 0))
	placeOnGrid(t, b, map[int]string{0: "a", 1: "b", 2: "pinned"})
	require.NoError(t, b.Add("pooled"))
	require.NoError(t, b.ToggleLock(2))

	b.ShuffleAll()

	assert.Equal(t, "pinned", b.Name(GridSlot(2)))
	assert.Equal(t, "pooled", b.Name(findInPool(b, "pooled")))
	assert.ElementsMatch(t, []string{"a", "b", "pinned", "pooled"}, b.Names())
}

func TestShuffleByPosition_CoinFlips(t *testing.T) {
	t.Parallel()

	// Position 0 flips heads and swaps, position 1 stays.
	b := NewBoard(mocks.NewRandom(1, 0))
	placeOnGrid(t, b, map[int]string{0: "a", 1: "b", 2: "c", 3: "d"})

	b.ShuffleByPosition()

	assert.Equal(t, "b", b.Name(GridSlot(0)))
	assert.Equal(t, "a", b.Name(GridSlot(1)))
	assert.Equal(t, "c", b.Name(GridSlot(2)))
	assert.Equal(t, "d", b.Name(GridSlot(3)))
}

func TestShuffleByPosition_ForcesOneSwapWhenAllFlipsMiss(t *testing.T) {
	t.Parallel()

	// Both coin flips miss, so one eligible pair is swapped anyway.
	b := NewBoard(mocks.NewRandom(0, 0, 1))
	placeOnGrid(t, b, map[int]string{0: "a", 1: "b", 2: "c", 3: "d"})

	b.ShuffleByPosition()

	assert.Equal(t, "a", b.Name(GridSlot(0)))
	assert.Equal(t, "d", b.Name(GridSlot(2)))
	assert.Equal(t, "c", b.Name(GridSlot(3)))
}

func TestShuffleByPosition_SkipsLockedAndIncompletePairs(t *testing.T) {
	t.Parallel()

	b := NewBoard(mocks.NewRandom(1, 1, 1, 1, 1))
	placeOnGrid(t, b, map[int]string{0: "a", 1: "b", 2: "solo", 4: "e", 5: "f"})
	require.NoError(t, b.ToggleLock(4))

	b.ShuffleByPosition()

	// Only position 0 is eligible: position 1 has an empty side and
	// position 2 has a locked side.
	assert.Equal(t, "b", b.Name(GridSlot(0)))
	assert.Equal(t, "a", b.Name(GridSlot(1)))
	assert.Equal(t, "solo", b.Name(GridSlot(2)))
	assert.Equal(t, "e", b.Name(GridSlot(4)))
	assert.Equal(t, "f", b.Name(GridSlot(5)))
}

func TestShuffleTeamPositions_KeepsTeamMembership(t *testing.T) {
	t.Parallel()

	b := NewBoard(mocks.NewRandom(0, 0))
	placeOnGrid(t, b, map[int]string{0: "t1-a", 2: "t1-b", 1: "t2-a", 3: "t2-b"})

	b.ShuffleTeamPositions()

	assert.ElementsMatch(t, []string{"t1-a", "t1-b"}, b.Team1())
	assert.ElementsMatch(t, []string{"t2-a", "t2-b"}, b.Team2())
	// Scripted swaps reversed both teams.
	assert.Equal(t, "t1-b", b.Name(GridSlot(0)))
	assert.Equal(t, "t2-b", b.Name(GridSlot(1)))
}

func TestSwapTeams_SkipsLockedPairs(t *testing.T) {
	t.Parallel()

	b := NewBoard(mocks.NewRandom())
	placeOnGrid(t, b, map[int]string{0: "a", 1: "b", 2: "c", 3: "d"})
	require.NoError(t, b.ToggleLock(2))

	b.SwapTeams()

	assert.Equal(t, "b", b.Name(GridSlot(0)))
	assert.Equal(t, "a", b.Name(GridSlot(1)))
	assert.Equal(t, "c", b.Name(GridSlot(2)), "locked pair untouched")
	assert.Equal(t, "d", b.Name(GridSlot(3)))
}

func TestClipboardText(t *testing.T) {
	t.Parallel()

	b := NewBoard(mocks.NewRandom())
	placeOnGrid(t, b, map[int]string{0: "a", 1: "b", 4: "mid"})

	assert.Equal(t, "Team 1\tTeam 2\na : b\n- : -\nmid : -\n- : -\n- : -\n", b.ClipboardText())
}
