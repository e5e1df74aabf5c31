// Package rates builds the index from pricing region to the distinct Silver
// plan rates offered there, sorted ascending.
//
// A plan row carries no usable region of its own: row i of the plan table
// takes its state and rate area from row i of the postal table. The two
// tables must therefore share row order.
package rates
