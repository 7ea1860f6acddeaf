// Package polysched plans repeating meeting schedules for networks of
// weighted relationships, approximating the Polyamorous Scheduling problem.
//
// What is polysched?
//
//	Every pair of participants with a relationship suffers strain while they
//	wait to meet again; heavier relationships strain faster. polysched builds
//	a cycle of days, each a set of meetups in which nobody is double-booked,
//	and measures the worst strain against a lower bound on the optimum.
//
// Under the hood, everything is organized under these subpackages:
//
//	relation/   - the symmetric weight matrix: validation, weight bands, CSV
//	coloring/   - proper edge coloring, one Misra–Gries fan step at a time
//	layer/      - colors one weight band and balances its day order
//	schedule/   - ordered days of meetups, text and YAML rendering
//	network/    - bounds, band partition, layer interleaving, realized strain
//	builder/    - seeded generators and the 8-participant sample network
//	cmd/polysched - command-line driver (example, input, perf, generate)
//
// Quick ASCII example:
//
//	Alice ──40── Belle        DAY #1: Alice and Belle meet
//	  │            │                  Claire and Daisy meet
//	  80           20   ───▶  DAY #2: Alice and Claire meet
//	  │            │                  Belle and Daisy meet
//	Claire ──16── Daisy
//
//	go install github.com/katalvlaran/polysched/cmd/polysched@latest
package polysched
