// Package core defines the shared vocabulary of metronet: stations, the
// connections between them, and the sentinel errors every other package
// reports input problems with.
//
// A station is an orb.Point (x, y) in the plane. A station set is a plain
// []orb.Point; the slice index of a station is its stable identifier, so
// station 0 is always the first point generated and the fixed root of the
// network builder.
//
// Types:
//
//	Edge    – a selected connection (From, To, Weight) between two stations.
//	EdgeKey – an unordered station pair, normalised so that U <= V. It is the
//	          form in which a forbidden connection travels between packages.
//
// Errors:
//
//	ErrInvalidInput – any boundary violation: empty station set, NaN/Inf or
//	                  negative coordinates, out-of-range or self pairs,
//	                  non-finite economic parameters.
//
// Callers branch on errors with errors.Is; every package wraps ErrInvalidInput
// with context via fmt.Errorf("...: %w", ErrInvalidInput).
package core
