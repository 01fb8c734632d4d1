// Package timing measures the latency of candidate computations under a
// randomized, seeded interleaving.
//
// A run is a fixed number of rounds. Each round calls every candidate once in
// an order drawn from a single seeded generator, so no candidate consistently
// runs after another one. The first BurnIn rounds are executed but never
// timed. The remaining rounds are timed one call at a time and may be skipped
// once a per-candidate or total time budget is spent. Samples are reduced into
// a mean and a Bessel-corrected standard deviation per candidate.
//
// Everything runs on the calling goroutine. Concurrent dispatch would make
// the wall-clock samples meaningless.
package timing
