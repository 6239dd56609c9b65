// Package benchmark provides performance benchmarks for the platform
// API's full request path.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run a single endpoint:
//
//	go test -bench=BenchmarkAPI_Health -benchmem ./internal/tests/benchmark/...
//
// Compare results:
//
//	go test -bench=. -benchmem -count=5 ./internal/tests/benchmark/... | tee new.txt
//	benchstat old.txt new.txt
//
// Unlike the handler package benchmarks, these measure the complete
// middleware chain the way production traffic traverses it, including
// request ID assignment, logging, and metrics observation.
package benchmark
