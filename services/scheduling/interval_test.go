package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		startA int
		durA   int
		startB int
		durB   int
		want   bool
	}{
		{"identical intervals", 600, 2, 600, 2, true},
		{"contained interval", 840, 3, 900, 1, true},
		{"partial overlap", 600, 2, 660, 2, true},
		{"back to back does not conflict", 600, 1, 660, 1, false},
		{"reverse back to back does not conflict", 660, 1, 600, 1, false},
		{"disjoint", 540, 1, 720, 2, false},
		{"one minute overlap", 600, 1, 659, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.startA, tt.durA, tt.startB, tt.durB))
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	starts := []int{540, 600, 630, 1380, 1410}
	durs := []int{1, 2, 3, 4}
	for _, sa := range starts {
		for _, da := range durs {
			for _, sb := range starts {
				for _, db := range durs {
					assert.Equal(t,
						Overlaps(sa, da, sb, db),
						Overlaps(sb, db, sa, da),
						"overlap must be symmetric for (%d,%d) vs (%d,%d)", sa, da, sb, db)
				}
			}
		}
	}
}

func TestFitsDay(t *testing.T) {
	// 22:00 + 2h ends exactly at midnight and fits.
	assert.True(t, FitsDay(1320, 2))
	// 22:30 + 2h would cross midnight.
	assert.False(t, FitsDay(1350, 2))
	assert.True(t, FitsDay(1410, 0))
	assert.False(t, FitsDay(1410, 1))
}
