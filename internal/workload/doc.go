// Package workload provides the built-in candidates the eztimer CLI can time:
// several Fibonacci algorithms computing the same value, and fixed sleeps
// useful for checking the harness itself. Every workload knows the value it
// must produce, which is what the result check compares against.
package workload
