// Package raster provides the stateless coverage algorithms behind pixl's
// primitive shapes.
//
// Every entry point takes shape geometry in local space, an affine transform
// to device space, a device clip rectangle and an anti-aliasing flag, and
// reports covered pixels through a CoverageFunc. Pixels are visited row by
// row, top to bottom, left to right, and each pixel is reported at most once
// per call with a coverage in (0, 1]. Nothing is allocated per pixel and no
// state survives a call.
//
// Pixel (i, j) is sampled at its center (i+0.5, j+0.5). Binary coverage of
// rectangles follows the half-open rule so shapes sharing an edge never both
// cover a pixel. All arithmetic is float64.
package raster
