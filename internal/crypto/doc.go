// Package crypto exposes the hashing used to identify input datasets.
//
// Contents
//
//   - Short content fingerprints for display/logging (Fingerprint,
//     FingerprintFile)
//
// # Notes
//
// Fingerprints are BLAKE2b-256 digests truncated to 10 bytes. They let a
// user confirm two runs read the same zips, plans and target files; they
// are not a security boundary.
package crypto
