// Package bore describes the geometry of a wind-instrument air column
// and derives its acoustic topology.
//
// A bore is a cylindrical tube with an excitation opening at position 0
// and an open distal end at position Length, carrying a row of tone
// holes. The topology builder partitions the tube into plain segments
// and hole junctions ordered by position, which is the form consumed by
// the impedance cascade.
//
// All lengths are in centimeters. The hole collection keeps the order
// the caller supplied; sorting by position happens only inside the
// derived topology, which is a value rebuilt from scratch on every
// evaluation and never cached across geometry changes.
package bore
