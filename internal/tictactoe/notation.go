package tictactoe

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMoves parses a comma-separated list of cell indices such as "0,4,1".
// Whitespace around entries is ignored. An empty string yields no moves.
func ParseMoves(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	moves := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("tictactoe: invalid move %q: %w", p, err)
		}
		if !ValidIndex(i) {
			return nil, fmt.Errorf("tictactoe: cell %d out of range 0-%d", i, CellCount-1)
		}
		moves = append(moves, i)
	}
	return moves, nil
}

// FormatMoves is the inverse of ParseMoves.
func FormatMoves(moves []int) string {
	parts := make([]string, len(moves))
	for n, i := range moves {
		parts[n] = strconv.Itoa(i)
	}
	return strings.Join(parts, ",")
}
