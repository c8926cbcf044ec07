package fontopts

import (
	"math"
	"testing"
)

func TestVariationCompare(t *testing.T) {
	nan := float32(math.NaN())

	tests := []struct {
		name string
		a, b Variation
		want int
	}{
		{"equal", Variation{TagWeight, 400}, Variation{TagWeight, 400}, 0},
		{"tag first", Variation{TagWidth, 900}, Variation{TagWeight, 100}, -1},
		{"then value", Variation{TagWeight, 400}, Variation{TagWeight, 700}, -1},
		{"greater value", Variation{TagWeight, 700}, Variation{TagWeight, 400}, 1},
		{"nan equals nan", Variation{TagWeight, nan}, Variation{TagWeight, nan}, 0},
		{"nan sorts first", Variation{TagWeight, nan}, Variation{TagWeight, -1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reverse Compare() = %d, want %d", got, -tt.want)
			}
			if got := tt.a.Equal(tt.b); got != (tt.want == 0) {
				t.Errorf("Equal() = %v, want %v", got, tt.want == 0)
			}
			if got := tt.a.Less(tt.b); got != (tt.want < 0) {
				t.Errorf("Less() = %v, want %v", got, tt.want < 0)
			}
		})
	}
}
