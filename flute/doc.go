// Package flute exposes the bore model as a single stateful engine for
// interactive hosts.
//
// An Engine owns a tube geometry and a tone-hole collection, and
// derives pitch, impedance curves, reflectograms, and a printable mesh
// from them on demand. Geometry mutations are atomic: a rejected call
// leaves the previous state untouched. Derived topology and impedance
// values are recomputed from scratch on every query — geometry may have
// changed between calls, so nothing is cached.
//
// An Engine is owned by one host and its methods must be serialized by
// the caller; there is no internal locking. All methods run to
// completion on the calling goroutine with bounded work, no I/O, and —
// on the UpdateHole/CalculatePitch drag hot path — no steady-state heap
// allocation, which makes per-frame invocation during pointer drags
// safe. A multi-goroutine host must add its own mutex around the
// instance.
package flute
