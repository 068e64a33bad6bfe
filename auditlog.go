package bookstore

import (
	"bufio"
	"fmt"
	"os"
)

// AuditLog is an append-only, line-oriented text store of action
// descriptions. Read-back is a full-file replay in append order.
type AuditLog struct {
	path string
}

// OpenAuditLog opens the audit log at the given path. The file is
// created lazily on the first append.
func OpenAuditLog(path string) *AuditLog {
	return &AuditLog{path: path}
}

// Append writes one description line at the end of the log.
func (l *AuditLog) Append(line string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("audit log %s: %w", l.path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("audit log %s: append: %w", l.path, err)
	}
	return nil
}

// All returns every line in append order. An absent or unreadable log
// reads as empty.
func (l *AuditLog) All() []string {
	f, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}
