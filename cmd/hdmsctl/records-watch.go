package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/authz"
)

// recordsWatchCmd represents the records watch command
var recordsWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a trigger file and import records when it changes",
	Long: `Watch a trigger file and bulk-import visit records when it changes.

To trigger an import, replace the contents of the watched file with the
path to a records CSV (same header as the record store). The path must be
visible to the process running "hdmsctl records watch".

The session must be active and permitted to add records; each import is
audited.

Example:
  hdmsctl records watch /run/hdms/import`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchRecords(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch records: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	recordsCmd.AddCommand(recordsWatchCmd)
}

func watchRecords(cmd *cobra.Command, filename string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.requireOperation(authz.OpAdd)
	if err != nil {
		return err
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for record imports (user: %s)\n", filename, sess.Identity.Username)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, importing records...\n", time.Now().Format(time.RFC3339))

				content, err := os.ReadFile(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
					continue
				}

				importPath := strings.TrimSpace(string(content))
				if importPath == "" {
					continue
				}

				imported, err := s.ImportRecords(importPath)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error importing records: %v\n", err)
					continue
				}
				if err := a.auditLog.Log(audit.NewImportEvent(sess.Identity, importPath, imported)); err != nil {
					fmt.Fprintf(os.Stderr, "Error auditing import: %v\n", err)
				}
				fmt.Printf("Imported %d records from %s\n", imported, importPath)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
