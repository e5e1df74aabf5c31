// Package selector picks the second-lowest Silver rate for a postal code.
package selector
