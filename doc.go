// Package metronet lays out metro networks over random stations and measures
// what it costs when one planned connection is bought out of the plan.
//
// 🚇 What is metronet?
//
//	A small, deterministic toolkit that brings together:
//		• Stations: seeded uniform points in a square (stations/)
//		• Distances: dense symmetric matrices (matrix/)
//		• Networks: Prim from station 0, one pair optionally forbidden; Kruskal as a cross-check (network/)
//		• Money: construction cost, corruption benefit, true cost of corruption (cost/)
//		• Sessions: the full bribe story with config, logs and metrics (scenario/)
//		• Terminal output: ASCII map and styled summary (render/)
//
// Under the hood:
//
//	core/      — Edge, EdgeKey, station validation and geometry helpers
//	stations/  — PointGenerator with functional options
//	matrix/    — Dense matrix and the station distance matrix
//	network/   — Build, Compute, Prim, Kruskal, Network.Validate
//	cost/      — Millions/Thousands and the three cost formulas
//	scenario/  — Run, Config (YAML), Metrics (Prometheus textfile)
//	render/    — Map and Summary
//	cmd/       — the metronet CLI
//
// Quick example (four stations, 0-1 forbidden):
//
//	stations: 0(0,0)  1(0,1)  2(1,0)  3(10,10)
//	baseline: 0-1 0-2 1-3   length 2 + √181
//	final:    0-2 2-1 1-3   length 1 + √2 + √181
//
//	go install github.com/katalvlaran/metronet/cmd/metronet@latest
package metronet
