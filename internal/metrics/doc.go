// Package metrics records what happened during a timing run: Prometheus
// series fed by a timing.Observer, and Go runtime memory counters sampled
// around the run to spot garbage collection noise.
package metrics
