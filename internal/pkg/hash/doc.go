// Package hash hashes admin passwords and one-time codes so only digests are
// stored, and verifies plaintext input against them.
package hash
