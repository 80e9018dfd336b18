// Package audit records who did what and when.
//
// Every user action, failed logins included, appends one entry to the
// usage log: a CSV file with (Username, Role, Action, Timestamp) columns,
// created with its header on first use and never truncated or rewritten.
// Failed logins are recorded under the "Invalid User"/"No Role" sentinels.
//
// An optional SQLite mirror keeps the same entries queryable; mirror
// failures never block the action being audited.
package audit
