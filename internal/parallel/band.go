// Package parallel provides row-band parallel rendering infrastructure for
// pixl.
//
// The frame buffer is split into horizontal bands of whole rows. Each band is
// rendered by exactly one worker, so concurrent writers never touch the same
// pixel and no locking is needed beyond the final join.
//
// Thread safety: Bands is a pure function. WorkerPool is safe for concurrent
// use.
package parallel

// MinBandRows is the smallest band height worth handing to a worker.
const MinBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Bands splits height rows into at most n contiguous, disjoint bands that
// cover every row exactly once. Bands are at least MinBandRows tall (except
// when height itself is smaller) and differ in height by at most one row.
// It returns nil for a non-positive height.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if maxBands := max(height/MinBandRows, 1); n > maxBands {
		n = maxBands
	}

	bands := make([]Band, n)
	base, extra := height/n, height%n
	y := 0
	for i := range bands {
		h := base
		if i < extra {
			h++
		}
		bands[i] = Band{Y0: y, Y1: y + h}
		y += h
	}
	return bands
}
