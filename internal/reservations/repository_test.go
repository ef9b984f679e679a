package reservations

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "gorm duplicated key sentinel",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "wrapped gorm duplicated key",
			err:  fmt.Errorf("create failed: %w", gorm.ErrDuplicatedKey),
			want: true,
		},
		{
			name: "postgres unique index violation",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_tickets_showtime_seat" (SQLSTATE 23505)`),
			want: true,
		},
		{
			name: "unrelated database error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "aborted transaction is not a unique violation",
			err:  errors.New("ERROR: current transaction is aborted, commands ignored until end of transaction block (SQLSTATE 25P02)"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}
