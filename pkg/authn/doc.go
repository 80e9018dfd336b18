// Package authn validates staff logins against the persisted credential
// source.
//
// The source is a comma-delimited file of (username, password, role) rows.
// Stored passwords are argon2id-encoded hashes; plaintext values from the
// original credential file are still accepted so existing data keeps
// working, and both forms compare in constant time.
//
// Authentication is stateless: every call reloads the source, and a failed
// login is reported by a nil credential, not an error.
package authn
