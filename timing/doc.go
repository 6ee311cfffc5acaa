// Package timing provides the shared value model of the signoff library.
//
// It defines:
//
//   - scalar aliases Time, Delay, Slack and Crpr over float64, plus the
//     Infinity sentinel for "never violated" required times;
//   - MinMax, the early/late (min/max) analysis view, and RiseFall,
//     the transition sense;
//   - TimingRole, the taxonomy of check kinds, with its mapping onto the
//     generic setup/hold roles that drive sign conventions;
//   - TimingArc and CheckEdge, the read-only check-arc model consumed
//     from cell timing libraries;
//   - Clock and ClockEdge, the clock definition model (period, waveform,
//     insertion delay, per-clock uncertainty);
//   - Path and ClkTreeNode, the realized timing path produced by the
//     graph search, including the clock tree trace consumed by
//     common-path pessimism removal.
//
// Everything in this package is a plain value type with deterministic
// arithmetic; there is no I/O and no hidden shared state. Paths are
// exclusively owned by the path end wrapping them and deep-copied by
// Clone; clocks, arcs and edges are externally owned tables that the
// rest of the library only borrows.
package timing
