package impedance

import "github.com/cwbudde/algo-flute/bore"

// InputImpedance returns the complex input impedance of the bore at the
// excitation end for the given topology and frequency.
//
// The walk starts from the unflanged radiation load at the open distal
// end and proceeds toward the excitation end: each plain segment
// transforms the running impedance through its transfer matrix, and each
// open hole junction combines the running impedance in parallel with the
// hole's shunt. Closed junctions split the duct for bookkeeping but
// inject no admittance.
//
// The result is a pure function of (topo, freq); the topology is not
// modified and nothing is retained between calls.
func InputImpedance(topo *bore.Topology, freq float64) complex128 {
	z := Radiation(topo.Geo.BoreRadius, freq)

	// Segments[i] sits before Junctions[i]; walk both lists backwards.
	for i := len(topo.Segments) - 1; i >= 0; i-- {
		seg := topo.Segments[i]
		z = SegmentMatrix(seg.Length(), seg.Radius, freq).Transform(z)

		if i == 0 {
			break
		}

		if h := topo.Junctions[i-1]; h.Open {
			z = parallel(z, HoleShunt(h, topo.Geo, freq))
		}
	}

	return z
}
