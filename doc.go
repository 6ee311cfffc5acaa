// Package signoff is an in-memory toolkit for the endpoint arithmetic
// of static timing analysis: classifying search endpoints by their
// terminating constraint and deriving slacks, required times, borrow
// and pessimism corrections from realized paths and design constraints.
//
// 🚀 What is signoff?
//
//	A small, thread-aware, testify-tested library that brings together:
//		• Value types: analysis views, transitions, clocks, waveforms, realized paths
//		• Check roles: setup/hold and their latch, gating, data and budget flavors
//		• Constraint tables: multi-cycle, path-delay, output-delay and data-check exceptions
//		• Path ends: seven endpoint variants behind one polymorphic contract
//		• Clock math: cycle accounting, uncertainty, skew, latch borrowing, CRPR
//		• Ordering: deterministic comparators for severity-ranked enumeration
//
// ✨ Why choose signoff?
//
//   - Total accessors – query any capability, sentinel answers instead of failures
//   - Pure value layer – no netlist, no I/O, no hidden global state
//   - Deterministic – structural tie-breaking, never pointer identity
//   - Deep-copy discipline – clones share nothing mutable
//
// Under the hood, everything is organized under three subpackages:
//
//	timing/  — scalar types, views, transitions, roles, clocks & realized paths
//	sdc/     — exception objects and the global constraint lookup tables
//	pathend/ — the endpoint variants, comparators and report field bundles
//
// Quick ASCII example:
//
//	launch ──logic──▶ reg/D    clk rises every 10
//	clk ──tree──▶ reg/CK       data arrives at 4, setup margin 1
//
//	required = 10, slack = 10 - 1 - 4 = 5
//
// Dive into the pathend package docs for the full variant catalogue and
// the sign conventions the formulas follow.
//
//	go get github.com/velanor/signoff
package signoff
