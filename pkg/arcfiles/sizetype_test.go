package arcfiles

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

const mib = 1024 * 1024

func TestTierOf(t *testing.T) {
	tests := []struct {
		size     int64
		expected SizeType
	}{
		{0, SizeXXS},
		{19 * mib, SizeXXS},
		{20*mib - 1, SizeXXS},
		{20 * mib, SizeXS}, // boundary is exclusive
		{49 * mib, SizeXS},
		{50 * mib, SizeS},
		{100 * mib, SizeM},
		{174 * mib, SizeM},
		{175 * mib, SizeL},
		{300 * mib, SizeXL},
		{500 * mib, SizeXXL},
		{799 * mib, SizeXXL},
		{800 * mib, SizeXXXL},
		{5000 * mib, SizeXXXL},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierOf(tt.size), "size=%d", tt.size)
	}
}

func TestTierOf_Monotonic(t *testing.T) {
	order := map[SizeType]int{
		SizeXXS: 0, SizeXS: 1, SizeS: 2, SizeM: 3,
		SizeL: 4, SizeXL: 5, SizeXXL: 6, SizeXXXL: 7,
	}
	prev := 0
	for size := int64(0); size <= 1000*mib; size += mib / 2 {
		tier := order[TierOf(size)]
		if tier < prev {
			t.Fatalf("tier decreased at size %d", size)
		}
		prev = tier
	}
}
