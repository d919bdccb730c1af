package changetracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Chilluba/gemini-cli/pkg/utils"
)

const trackerDir = ".gemini-cli"

// CreateBackup creates a timestamped backup of a file before mutation.
// It reads the content of the file at filePath and saves it to the backup
// directory (.gemini-cli/backups) with a timestamped filename.
func CreateBackup(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing to back up.
			return "", nil
		}
		return "", fmt.Errorf("failed to read file '%s' for backup: %w", filePath, err)
	}

	backupDir := filepath.Join(trackerDir, "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory '%s': %w", backupDir, err)
	}

	baseFilename := filepath.Base(filePath)
	timestamp := utils.SanitizeTimestamp(utils.GetTimestamp())

	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s_%s.bak", baseFilename, timestamp))
	if err := os.WriteFile(backupPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to save backup file '%s': %w", backupPath, err)
	}

	return backupPath, nil
}

// SessionRecord notes that an edit or analysis run occurred. Records are
// side notifications only; nothing reads them back for correctness.
type SessionRecord struct {
	SessionID   string    `json:"session_id"`
	Kind        string    `json:"kind"` // edit or analysis
	Target      string    `json:"target"`
	Model       string    `json:"model"`
	Suggestions int       `json:"suggestions"`
	Applied     bool      `json:"applied"`
	Timestamp   time.Time `json:"timestamp"`
}

// RecordSession appends a session record to .gemini-cli/sessions.jsonl.
// Failures are returned for logging but callers treat them as non-fatal.
func RecordSession(record SessionRecord) error {
	if err := os.MkdirAll(trackerDir, 0755); err != nil {
		return fmt.Errorf("failed to create tracker directory: %w", err)
	}
	record.Timestamp = time.Now()

	f, err := os.OpenFile(filepath.Join(trackerDir, "sessions.jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open session log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write session record: %w", err)
	}
	return nil
}
