// Package model defines the core data types for HDMS.
//
// This package contains the records that flow between the credential store,
// the patient record store, and the CLI:
//
//   - Credential: a stored (username, password, role) triple
//   - Role: the staff role attached to a credential
//   - VisitRecord: one row of the patient visit table
//
// VisitRecord carries the thirteen columns of the records file in their
// canonical order; see Columns.
package model
