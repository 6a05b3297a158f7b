package bore

import "testing"

func BenchmarkTopologyBuild(b *testing.B) {
	geo := Geometry{Length: 60, BoreRadius: 0.95, WallThickness: 0.4}
	holes := []Hole{
		{Position: 25, Radius: 0.35, Open: true},
		{Position: 28, Radius: 0.35, Open: true},
		{Position: 32, Radius: 0.35, Open: false},
		{Position: 36, Radius: 0.35, Open: true},
		{Position: 40, Radius: 0.4, Open: true},
		{Position: 45, Radius: 0.4, Open: true},
	}

	var topo Topology

	b.ReportAllocs()

	for b.Loop() {
		topo.Build(geo, holes)
	}
}
