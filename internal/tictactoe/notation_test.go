package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "4", want: []int{4}},
		{name: "list with spaces", input: " 0, 4 ,1", want: []int{0, 4, 1}},
		{name: "not a number", input: "0,a", wantErr: true},
		{name: "out of range", input: "9", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "trailing comma", input: "1,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoves(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMovesRoundTrip(t *testing.T) {
	g, err := Replay(0, 4, 1)
	require.NoError(t, err)

	s := FormatMoves(g.Transcript())
	assert.Equal(t, "0,4,1", s)

	moves, err := ParseMoves(s)
	require.NoError(t, err)
	assert.Equal(t, g.Transcript(), moves)
}
