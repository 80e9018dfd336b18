package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/authz"
	"github.com/carevault/hdms-in-go/pkg/config"
	"github.com/carevault/hdms-in-go/pkg/session"
	"github.com/carevault/hdms-in-go/pkg/store"
)

// app bundles the collaborators every command needs: configuration, the
// usage log, and the session manager. One is built per invocation.
type app struct {
	cfg      *config.Config
	auditLog *audit.Logger
	sessions *session.Manager
	log      *zap.Logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := zap.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	mirror, err := audit.NewStore(cfg.AuditDatabase)
	if err != nil {
		return nil, err
	}
	opts := []audit.Option{}
	if mirror != nil {
		opts = append(opts, audit.WithMirror(mirror))
	}
	auditLog, err := audit.NewLogger(cfg.UsageLog, opts...)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	return &app{
		cfg:      cfg,
		auditLog: auditLog,
		sessions: session.NewManager(cfg.SessionFile, ttl),
		log:      log,
	}, nil
}

func (a *app) close() {
	if err := a.auditLog.Close(); err != nil {
		a.log.Warn("failed to close audit mirror", zap.Error(err))
	}
	_ = a.log.Sync()
}

// requireOperation verifies the active session and checks the permission
// table. A refusal is itself audited.
func (a *app) requireOperation(op authz.Operation) (*session.Session, error) {
	sess, err := a.sessions.Current()
	if err != nil {
		return nil, err
	}
	if !authz.Can(sess.Identity.Role, op) {
		if err := a.auditLog.Log(audit.NewDeniedEvent(sess.Identity, op)); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("role %q is not permitted to %s", sess.Identity.Role, op)
	}
	return sess, nil
}

// openStore opens the patient record store from the configured source.
func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.cfg.RecordsFile, store.WithLogger(a.log))
}
