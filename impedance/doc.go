// Package impedance computes the acoustic input impedance of a bore
// using the transfer-matrix method.
//
// Each plain cylindrical segment maps to a 2x2 complex ABCD matrix over
// pressure and volume flow, with viscothermal boundary-layer losses
// folded into a complex wavenumber. Open tone holes load the bore as
// parallel shunt impedances built from a short duct with end corrections
// and an unflanged radiation termination. The cascade walks the topology
// from the radiation load at the open distal end back to the excitation
// end and yields the complex input impedance as a function of frequency.
//
// All computations are pure functions of (topology, frequency); nothing
// is cached between calls. Units are cgs: cm, grams, seconds, with
// impedances in acoustic ohms (dyn*s/cm^5).
package impedance
