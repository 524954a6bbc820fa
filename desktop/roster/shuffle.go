package roster

import (
	"fmt"
	"strings"
)

// ShuffleAll permutes the names across every unlocked, occupied grid slot
// with a uniform Fisher-Yates shuffle. Pool and locked slots are untouched.
func (b *Board) ShuffleAll() {
	var idx []int
	for i, n := range b.grid {
		if n != "" && !b.locked[i] {
			idx = append(idx, i)
		}
	}

	for i := len(idx) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.grid[idx[i]], b.grid[idx[j]] = b.grid[idx[j]], b.grid[idx[i]]
	}
}

// ShuffleByPosition coin-flips each position pair across the two teams and
// swaps the flipped ones. A pair touching a locked or empty slot never
// participates. When no pair swapped at all, one random eligible pair is
// swapped anyway so the button visibly does something.
func (b *Board) ShuffleByPosition() {
	var eligible []int
	for pos := 0; pos < PositionCount; pos++ {
		if b.pairEligible(pos) {
			eligible = append(eligible, pos)
		}
	}
	if len(eligible) == 0 {
		return
	}

	swapped := false
	for _, pos := range eligible {
		if b.rng.Intn(2) == 1 {
			b.swapPair(pos)
			swapped = true
		}
	}
	if !swapped {
		b.swapPair(eligible[b.rng.Intn(len(eligible))])
	}
}

// ShuffleTeamPositions permutes each team's names among its own unlocked,
// occupied slots, leaving team membership intact.
func (b *Board) ShuffleTeamPositions() {
	for team := 0; team < 2; team++ {
		var idx []int
		for pos := 0; pos < PositionCount; pos++ {
			i := 2*pos + team
			if b.grid[i] != "" && !b.locked[i] {
				idx = append(idx, i)
			}
		}
		for i := len(idx) - 1; i > 0; i-- {
			j := b.rng.Intn(i + 1)
			b.grid[idx[i]], b.grid[idx[j]] = b.grid[idx[j]], b.grid[idx[i]]
		}
	}
}

// SwapTeams exchanges the two teams position by position, skipping any pair
// with a locked side.
func (b *Board) SwapTeams() {
	for pos := 0; pos < PositionCount; pos++ {
		if b.locked[2*pos] || b.locked[2*pos+1] {
			continue
		}
		b.swapPair(pos)
	}
}

// ClipboardText renders the grid as tab-separated team columns, one position
// per line, with "-" standing in for an empty slot.
func (b *Board) ClipboardText() string {
	var sb strings.Builder
	sb.WriteString("Team 1\tTeam 2\n")
	for pos := 0; pos < PositionCount; pos++ {
		sb.WriteString(fmt.Sprintf("%s : %s\n", orDash(b.grid[2*pos]), orDash(b.grid[2*pos+1])))
	}
	return sb.String()
}

func (b *Board) pairEligible(pos int) bool {
	t1, t2 := 2*pos, 2*pos+1
	return b.grid[t1] != "" && b.grid[t2] != "" && !b.locked[t1] && !b.locked[t2]
}

func (b *Board) swapPair(pos int) {
	t1, t2 := 2*pos, 2*pos+1
	b.grid[t1], b.grid[t2] = b.grid[t2], b.grid[t1]
}

func orDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
