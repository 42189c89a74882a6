package network_test

import (
	"testing"

	"github.com/katalvlaran/metronet/network"
	"github.com/katalvlaran/metronet/stations"
)

// BenchmarkPrim measures Build on 200 seeded stations.
func BenchmarkPrim(b *testing.B) {
	pts, _ := stations.Generate(200, 42) // pre-build stations once
	b.ResetTimer()                       // exclude generation
	for i := 0; i < b.N; i++ {
		_, _ = network.Build(pts)
	}
}

// BenchmarkKruskal measures the Kruskal cross-check on the same stations.
func BenchmarkKruskal(b *testing.B) {
	pts, _ := stations.Generate(200, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = network.Build(pts, network.WithMethod(network.MethodKruskal))
	}
}
