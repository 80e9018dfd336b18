// Package identity carries the authenticated staff identity through a
// session, plus the sentinel identity under which failed logins are audited.
package identity
