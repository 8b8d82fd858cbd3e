// Package standard holds the fixed design-code tables used by the calculators:
// partial safety factors, load combinations, IS 2062 steel grades and
// deflection presets. The tables are built once and never mutated, so they
// are safe for concurrent readers.
package standard
