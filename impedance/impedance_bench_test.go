package impedance

import (
	"testing"

	"github.com/cwbudde/algo-flute/bore"
)

func BenchmarkInputImpedance(b *testing.B) {
	geo := bore.Geometry{Length: 60, BoreRadius: 0.95, WallThickness: 0.4}
	holes := []bore.Hole{
		{Position: 25, Radius: 0.35, Open: true},
		{Position: 28, Radius: 0.35, Open: true},
		{Position: 32, Radius: 0.35, Open: true},
		{Position: 36, Radius: 0.35, Open: true},
		{Position: 40, Radius: 0.4, Open: true},
		{Position: 45, Radius: 0.4, Open: true},
	}

	var topo bore.Topology
	topo.Build(geo, holes)

	b.ReportAllocs()

	for b.Loop() {
		InputImpedance(&topo, 440)
	}
}
