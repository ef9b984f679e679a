package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFreeSeat(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		perRow   int
		taken    map[SeatKey]bool
		wantKey  SeatKey
		wantFree bool
	}{
		{
			name:     "empty grid picks first seat",
			rows:     5,
			perRow:   20,
			taken:    map[SeatKey]bool{},
			wantKey:  SeatKey{RowNo: 1, SeatNo: 1},
			wantFree: true,
		},
		{
			name:   "skips taken seats within a row",
			rows:   5,
			perRow: 20,
			taken: map[SeatKey]bool{
				{RowNo: 1, SeatNo: 1}: true,
				{RowNo: 1, SeatNo: 2}: true,
			},
			wantKey:  SeatKey{RowNo: 1, SeatNo: 3},
			wantFree: true,
		},
		{
			name:   "moves to next row when row is full",
			rows:   3,
			perRow: 2,
			taken: map[SeatKey]bool{
				{RowNo: 1, SeatNo: 1}: true,
				{RowNo: 1, SeatNo: 2}: true,
			},
			wantKey:  SeatKey{RowNo: 2, SeatNo: 1},
			wantFree: true,
		},
		{
			name:   "fills gaps left by cancellations first",
			rows:   2,
			perRow: 2,
			taken: map[SeatKey]bool{
				{RowNo: 1, SeatNo: 1}: true,
				{RowNo: 2, SeatNo: 1}: true,
			},
			wantKey:  SeatKey{RowNo: 1, SeatNo: 2},
			wantFree: true,
		},
		{
			name:   "full grid has no free seat",
			rows:   2,
			perRow: 2,
			taken: map[SeatKey]bool{
				{RowNo: 1, SeatNo: 1}: true,
				{RowNo: 1, SeatNo: 2}: true,
				{RowNo: 2, SeatNo: 1}: true,
				{RowNo: 2, SeatNo: 2}: true,
			},
			wantFree: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := NextFreeSeat(tt.rows, tt.perRow, tt.taken)
			assert.Equal(t, tt.wantFree, ok)
			if tt.wantFree {
				assert.Equal(t, tt.wantKey, key)
			}
		})
	}
}

func TestNextFreeSeatIsDeterministic(t *testing.T) {
	taken := map[SeatKey]bool{
		{RowNo: 1, SeatNo: 1}: true,
		{RowNo: 1, SeatNo: 3}: true,
	}

	first, ok := NextFreeSeat(5, 20, taken)
	assert.True(t, ok)

	for i := 0; i < 10; i++ {
		key, ok := NextFreeSeat(5, 20, taken)
		assert.True(t, ok)
		assert.Equal(t, first, key)
	}
}

func TestNextFreeSeatAllocatesWholeGrid(t *testing.T) {
	const rows, perRow = 5, 20
	taken := make(map[SeatKey]bool)

	for i := 0; i < rows*perRow; i++ {
		key, ok := NextFreeSeat(rows, perRow, taken)
		assert.True(t, ok, "seat %d should be allocatable", i)
		assert.False(t, taken[key], "seat %v allocated twice", key)
		taken[key] = true
	}

	_, ok := NextFreeSeat(rows, perRow, taken)
	assert.False(t, ok, "grid should be exhausted after %d allocations", rows*perRow)
}
