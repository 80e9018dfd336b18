// Package main implements hdmsctl, the hospital data management CLI.
//
// hdmsctl is the presentation layer over the HDMS core: it collects
// already-validated inputs, calls one core operation per command, and
// renders whatever the core returns. Every action is written to the
// append-only usage log, failed logins included.
//
// # Architecture
//
// The core is organized into several packages:
//
//   - pkg/authn: credential loading and login validation
//   - pkg/authz: the role → permitted-operation table
//   - pkg/store: the patient visit record store
//   - pkg/report: aggregate key statistics
//   - pkg/audit: the usage log and its optional database mirror
//   - pkg/session: session tokens between invocations
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Log in (nurse/clinician roles may manage patient records)
//	hdmsctl login -u nurse1 -p secret
//
//	# Work with records
//	hdmsctl patient retrieve P001
//	hdmsctl visits count 2024-01-05
//	hdmsctl logout
//
// # Environment Variables
//
//   - HDMS_CONFIG_PATH: directory containing hdms.yml
//   - HDMS_CREDENTIALS_FILE, HDMS_RECORDS_FILE, HDMS_USAGE_LOG,
//     HDMS_SESSION_FILE, HDMS_SESSION_TTL_MINUTES, HDMS_AUDIT_DATABASE:
//     per-setting overrides
package main
