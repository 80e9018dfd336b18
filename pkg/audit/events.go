package audit

import (
	"github.com/carevault/hdms-in-go/pkg/authz"
	"github.com/carevault/hdms-in-go/pkg/identity"
)

// Event is one auditable action. Username and Role identify the acting
// staff member; Action is the label written to the usage log.
type Event interface {
	Username() string
	Role() string
	Action() string
}

// actor embeds the acting identity into an event.
type actor struct {
	Identity *identity.Identity
}

func (a actor) Username() string {
	return a.Identity.Username
}

func (a actor) Role() string {
	return a.Identity.Role.String()
}

// LoginEvent records a login attempt. Failed attempts are logged under the
// invalid-user sentinel identity.
type LoginEvent struct {
	actor
	Success bool
}

// NewLoginEvent builds a login event for id, or for the sentinel identity
// when the attempt failed.
func NewLoginEvent(id *identity.Identity, success bool) LoginEvent {
	if !success || id == nil {
		id = identity.Invalid()
	}
	return LoginEvent{actor: actor{Identity: id}, Success: success}
}

func (e LoginEvent) Action() string {
	if e.Success {
		return "Successful Login"
	}
	return "Unsuccessful Login"
}

// LogoutEvent records the end of a session.
type LogoutEvent struct {
	actor
}

func NewLogoutEvent(id *identity.Identity) LogoutEvent {
	return LogoutEvent{actor: actor{Identity: id}}
}

func (e LogoutEvent) Action() string {
	return "Logout"
}

// RetrieveEvent records a patient visit lookup.
type RetrieveEvent struct {
	actor
	PatientID string
}

func NewRetrieveEvent(id *identity.Identity, patientID string) RetrieveEvent {
	return RetrieveEvent{actor: actor{Identity: id}, PatientID: patientID}
}

func (e RetrieveEvent) Action() string {
	return "Retrieve Patient"
}

// AddEvent records a visit record addition.
type AddEvent struct {
	actor
	PatientID string
	VisitID   string
}

func NewAddEvent(id *identity.Identity, patientID, visitID string) AddEvent {
	return AddEvent{actor: actor{Identity: id}, PatientID: patientID, VisitID: visitID}
}

func (e AddEvent) Action() string {
	return "Add Patient"
}

// RemoveEvent records a removal of all visits for a patient.
type RemoveEvent struct {
	actor
	PatientID string
}

func NewRemoveEvent(id *identity.Identity, patientID string) RemoveEvent {
	return RemoveEvent{actor: actor{Identity: id}, PatientID: patientID}
}

func (e RemoveEvent) Action() string {
	return "Remove Patient"
}

// CountEvent records a visits-per-date count.
type CountEvent struct {
	actor
	Date string
}

func NewCountEvent(id *identity.Identity, date string) CountEvent {
	return CountEvent{actor: actor{Identity: id}, Date: date}
}

func (e CountEvent) Action() string {
	return "Count Visits"
}

// StatsEvent records a key-statistics run.
type StatsEvent struct {
	actor
}

func NewStatsEvent(id *identity.Identity) StatsEvent {
	return StatsEvent{actor: actor{Identity: id}}
}

func (e StatsEvent) Action() string {
	return "Generate Statistics"
}

// ImportEvent records a bulk import of visit records.
type ImportEvent struct {
	actor
	Source   string
	Imported int
}

func NewImportEvent(id *identity.Identity, source string, imported int) ImportEvent {
	return ImportEvent{actor: actor{Identity: id}, Source: source, Imported: imported}
}

func (e ImportEvent) Action() string {
	return "Import Records"
}

// DeniedEvent records an operation refused by the permission table.
type DeniedEvent struct {
	actor
	Operation authz.Operation
}

func NewDeniedEvent(id *identity.Identity, op authz.Operation) DeniedEvent {
	return DeniedEvent{actor: actor{Identity: id}, Operation: op}
}

func (e DeniedEvent) Action() string {
	return "Permission Denied: " + string(e.Operation)
}
