package entities

import "strings"

// ParseRosterText parses a pasted team sheet into the two rosters.
//
// The format is line-oriented: each line is expected to read `name : name`,
// team 1 on the left and team 2 on the right. Lines without a colon (headers,
// blank lines) are skipped, as is any line with more than one colon. A `-` or
// empty field omits that side's entry. The two returned slices are never nil.
func ParseRosterText(text string) (team1, team2 []string) {
	team1 = []string{}
	team2 = []string{}
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			continue
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		if left != "" && left != "-" {
			team1 = append(team1, left)
		}
		if right != "" && right != "-" {
			team2 = append(team2, right)
		}
	}
	return team1, team2
}
