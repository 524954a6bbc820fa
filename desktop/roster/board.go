// Package roster is the companion app's drag-and-drop model: ten fixed team
// grid slots plus a holding pool, with the guarantee that every name occupies
// exactly one slot across both after any operation.
package roster

import (
	"errors"

	"github.com/Acronica/Team-Maker/dependencies/random"
)

const (
	// GridSlots is 5 positions times 2 teams, interleaved team1/team2.
	GridSlots = 10

	// Positions per team.
	PositionCount = 5

	// MinPoolSlots is the smallest pool the board maintains.
	MinPoolSlots = 20
)

// Positions in grid order.
var Positions = [PositionCount]string{"Top", "Jungle", "Mid", "Bot", "Support"}

var (
	ErrBadSlot       = errors.New("no such slot")
	ErrEmptySource   = errors.New("nothing to drag from that slot")
	ErrLockedSlot    = errors.New("slot is locked")
	ErrDuplicateName = errors.New("name already on the board")
)

// Area distinguishes the team grid from the holding pool.
type Area int

const (
	AreaGrid Area = iota
	AreaPool
)

// SlotRef addresses one slot on the board.
type SlotRef struct {
	Area  Area
	Index int
}

// GridSlot addresses grid slot i. Even indexes are team 1, odd team 2;
// index/2 is the position.
func GridSlot(i int) SlotRef { return SlotRef{Area: AreaGrid, Index: i} }

// PoolSlot addresses pool slot i.
func PoolSlot(i int) SlotRef { return SlotRef{Area: AreaPool, Index: i} }

// Board holds the full roster state. It is a plain value owned by a single
// caller, mirroring the UI thread that drove the original.
type Board struct {
	grid   [GridSlots]string
	locked [GridSlots]bool
	pool   []string
	rng    random.Random
}

// NewBoard returns an empty board with the minimum pool size.
func NewBoard(rng random.Random) *Board {
	return &Board{pool: make([]string, MinPoolSlots), rng: rng}
}

// Name returns the occupant of a slot, empty string for a vacant slot.
func (b *Board) Name(ref SlotRef) string {
	if !b.valid(ref) {
		return ""
	}
	return *b.at(ref)
}

// Locked reports whether a grid slot is locked. Pool slots never lock.
func (b *Board) Locked(ref SlotRef) bool {
	return ref.Area == AreaGrid && b.valid(ref) && b.locked[ref.Index]
}

// PoolSize returns the current number of pool slots.
func (b *Board) PoolSize() int { return len(b.pool) }

// Names returns every occupied name across grid and pool.
func (b *Board) Names() []string {
	var names []string
	for _, n := range b.grid {
		if n != "" {
			names = append(names, n)
		}
	}
	for _, n := range b.pool {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// ToggleLock flips an occupied grid slot's lock. Empty slots cannot lock, so
// a locked slot always holds a name.
func (b *Board) ToggleLock(i int) error {
	if i < 0 || i >= GridSlots {
		return ErrBadSlot
	}
	if b.grid[i] == "" {
		return ErrEmptySource
	}
	b.locked[i] = !b.locked[i]
	return nil
}

// Drag moves the occupant of one slot onto another. Grid-to-grid swaps the
// two slots. Dropping onto an occupied slot from the pool displaces the
// occupant into the pool; otherwise an occupied target swaps back into the
// source slot, so no drop ever loses a name. Locked grid slots reject both
// pick-up and drop.
func (b *Board) Drag(from, to SlotRef) error {
	if !b.valid(from) || !b.valid(to) {
		return ErrBadSlot
	}
	if from == to {
		return nil
	}
	if b.Locked(from) || b.Locked(to) {
		return ErrLockedSlot
	}

	src, dst := b.at(from), b.at(to)
	if *src == "" {
		return ErrEmptySource
	}

	if from.Area == AreaPool && to.Area == AreaGrid && *dst != "" {
		displaced := *dst
		*dst = *src
		*src = ""
		b.intoPool(displaced)
		return nil
	}

	*src, *dst = *dst, *src
	return nil
}

// Rename replaces a slot's name. An empty new name clears the slot; a name
// already occupying any other slot is rejected, case-sensitively.
func (b *Board) Rename(ref SlotRef, name string) error {
	if !b.valid(ref) {
		return ErrBadSlot
	}
	if b.Locked(ref) {
		return ErrLockedSlot
	}
	if name != "" && b.taken(name, ref) {
		return ErrDuplicateName
	}
	*b.at(ref) = name
	return nil
}

// Add places a new name into the first empty pool slot, growing the pool if
// none is free.
func (b *Board) Add(name string) error {
	if name == "" {
		return ErrEmptySource
	}
	if b.taken(name, SlotRef{Index: -1}) {
		return ErrDuplicateName
	}
	b.intoPool(name)
	return nil
}

// ReturnAllToPool moves every unlocked grid occupant back into the pool.
func (b *Board) ReturnAllToPool() {
	for i := range b.grid {
		if b.grid[i] == "" || b.locked[i] {
			continue
		}
		b.intoPool(b.grid[i])
		b.grid[i] = ""
	}
}

// Reset clears the whole board back to its initial empty state.
func (b *Board) Reset() {
	b.grid = [GridSlots]string{}
	b.locked = [GridSlots]bool{}
	b.pool = make([]string, MinPoolSlots)
}

// LoadPool rebuilds the pool from a fetched name list, excluding names
// already placed on the grid and padding back to the minimum size.
func (b *Board) LoadPool(names []string) {
	onGrid := make(map[string]bool, GridSlots)
	for _, n := range b.grid {
		if n != "" {
			onGrid[n] = true
		}
	}

	pool := make([]string, 0, MinPoolSlots)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" || onGrid[n] || seen[n] {
			continue
		}
		seen[n] = true
		pool = append(pool, n)
	}
	for len(pool) < MinPoolSlots {
		pool = append(pool, "")
	}
	b.pool = pool
}

// Team1 returns team 1's names in position order, skipping empty slots.
func (b *Board) Team1() []string { return b.teamNames(0) }

// Team2 returns team 2's names in position order, skipping empty slots.
func (b *Board) Team2() []string { return b.teamNames(1) }

func (b *Board) teamNames(team int) []string {
	names := make([]string, 0, PositionCount)
	for pos := 0; pos < PositionCount; pos++ {
		if n := b.grid[2*pos+team]; n != "" {
			names = append(names, n)
		}
	}
	return names
}

func (b *Board) valid(ref SlotRef) bool {
	switch ref.Area {
	case AreaGrid:
		return ref.Index >= 0 && ref.Index < GridSlots
	case AreaPool:
		return ref.Index >= 0 && ref.Index < len(b.pool)
	}
	return false
}

func (b *Board) at(ref SlotRef) *string {
	if ref.Area == AreaGrid {
		return &b.grid[ref.Index]
	}
	return &b.pool[ref.Index]
}

// taken reports whether the name occupies any slot other than except.
func (b *Board) taken(name string, except SlotRef) bool {
	for i, n := range b.grid {
		if n == name && !(except.Area == AreaGrid && except.Index == i) {
			return true
		}
	}
	for i, n := range b.pool {
		if n == name && !(except.Area == AreaPool && except.Index == i) {
			return true
		}
	}
	return false
}

// intoPool places a name in the first empty pool slot, appending when full.
func (b *Board) intoPool(name string) {
	for i, n := range b.pool {
		if n == "" {
			b.pool[i] = name
			return
		}
	}
	b.pool = append(b.pool, name)
}
