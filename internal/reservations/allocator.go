package reservations

// SeatKey addresses one seat of the fixed grid.
type SeatKey struct {
	RowNo  int
	SeatNo int
}

// NextFreeSeat scans the grid row by row, seats ascending within a row, and
// returns the first seat not present in taken. Deterministic first-fit: two
// allocators over the same taken set always pick the same seat, which is what
// makes the unique-constraint backstop effective under races.
func NextFreeSeat(rows, seatsPerRow int, taken map[SeatKey]bool) (SeatKey, bool) {
	for row := 1; row <= rows; row++ {
		for seat := 1; seat <= seatsPerRow; seat++ {
			key := SeatKey{RowNo: row, SeatNo: seat}
			if !taken[key] {
				return key, true
			}
		}
	}
	return SeatKey{}, false
}
