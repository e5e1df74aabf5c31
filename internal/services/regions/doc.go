// Package regions resolves target postal codes to a single pricing region.
//
// A postal code spanning several counties resolves to one region only while
// every one of its rows names the same state and rate area. The first
// disagreement marks it ambiguous and nothing later undoes that.
package regions
