/*
Package workers sizes worker pools from GOMAXPROCS rather than
runtime.NumCPU, so pools respect container CPU limits (Go 1.19+ sets
GOMAXPROCS from cgroup constraints while NumCPU still reports the host).

The EXTRACT_WORKERS environment variable overrides the automatic calculation
for operators who need to pin concurrency in a specific environment.
*/
package workers
