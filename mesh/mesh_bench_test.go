package mesh

import "testing"

func BenchmarkBuild(b *testing.B) {
	geo, holes := testGeometry()
	builder := DefaultBuilder()

	b.ReportAllocs()

	for b.Loop() {
		builder.Build(geo, holes)
	}
}
