package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRosterText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantTeam1 []string
		wantTeam2 []string
	}{
		{
			name:      "simple pairs",
			text:      "Faker : Chovy\nZeus : Doran",
			wantTeam1: []string{"Faker", "Zeus"},
			wantTeam2: []string{"Chovy", "Doran"},
		},
		{
			name:      "lines without a colon are ignored",
			text:      "Team sheet\nFaker : Chovy\n\njust words",
			wantTeam1: []string{"Faker"},
			wantTeam2: []string{"Chovy"},
		},
		{
			name:      "dash omits a side",
			text:      "Faker : -\n- : Chovy",
			wantTeam1: []string{"Faker"},
			wantTeam2: []string{"Chovy"},
		},
		{
			name:      "empty side omitted",
			text:      "Faker : \n : Chovy",
			wantTeam1: []string{"Faker"},
			wantTeam2: []string{"Chovy"},
		},
		{
			name:      "more than one colon skips the line",
			text:      "a : b : c\nFaker : Chovy",
			wantTeam1: []string{"Faker"},
			wantTeam2: []string{"Chovy"},
		},
		{
			name:      "surrounding whitespace trimmed",
			text:      "  Faker   :   Chovy  ",
			wantTeam1: []string{"Faker"},
			wantTeam2: []string{"Chovy"},
		},
		{
			name:      "nothing extractable",
			text:      "no pairs here\n- : -",
			wantTeam1: []string{},
			wantTeam2: []string{},
		},
		{
			name:      "non-ascii names",
			text:      "가 : 나",
			wantTeam1: []string{"가"},
			wantTeam2: []string{"나"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			team1, team2 := ParseRosterText(tt.text)
			assert.Equal(t, tt.wantTeam1, team1)
			assert.Equal(t, tt.wantTeam2, team2)
		})
	}
}
