package parallel

import "testing"

func TestBands_CoverEveryRowOnce(t *testing.T) {
	tests := []struct {
		height, n int
		wantBands int
	}{
		{100, 4, 4},
		{100, 1, 1},
		{100, 0, 1},
		{17, 8, 1},
		{1000, 7, 7},
		{64, 64, 4},
		{5, 3, 1},
	}
	for _, tt := range tests {
		bands := Bands(tt.height, tt.n)
		if len(bands) != tt.wantBands {
			t.Errorf("Bands(%d, %d) returned %d bands, want %d", tt.height, tt.n, len(bands), tt.wantBands)
			continue
		}
		next := 0
		minRows, maxRows := tt.height, 0
		for _, b := range bands {
			if b.Y0 != next {
				t.Errorf("Bands(%d, %d): band %v starts at %d, want %d", tt.height, tt.n, b, b.Y0, next)
			}
			next = b.Y1
			minRows = min(minRows, b.Rows())
			maxRows = max(maxRows, b.Rows())
		}
		if next != tt.height {
			t.Errorf("Bands(%d, %d) ends at row %d, want %d", tt.height, tt.n, next, tt.height)
		}
		if maxRows-minRows > 1 {
			t.Errorf("Bands(%d, %d) unbalanced: rows %d..%d", tt.height, tt.n, minRows, maxRows)
		}
	}
}

func TestBands_Empty(t *testing.T) {
	if got := Bands(0, 4); got != nil {
		t.Errorf("Bands(0, 4) = %v, want nil", got)
	}
	if got := Bands(-3, 4); got != nil {
		t.Errorf("Bands(-3, 4) = %v, want nil", got)
	}
}
