// Package session keeps the logged-in identity between hdmsctl
// invocations. A login issues a signed, expiring token bound to a
// throwaway key on disk; every later command verifies it before touching
// the record store.
package session
