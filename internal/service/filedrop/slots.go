package filedrop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	inSuffix  = "_in.txt"
	outSuffix = "_out.txt"
)

// SlotStore exchanges messages with file-based counterparties through a
// shared directory. Inbound slots are <name>_in.txt files; a slot is
// pending while non-empty and gets truncated once processed. Outbound
// commands go to <account_id>_out.txt, one logical slot per account,
// overwriting any unread prior content.
type SlotStore struct {
	dir string
}

// NewSlotStore opens (and creates if needed) the slot directory.
func NewSlotStore(dir string) (*SlotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}
	return &SlotStore{dir: dir}, nil
}

// Dir returns the slot directory path.
func (s *SlotStore) Dir() string {
	return s.dir
}

// PendingInputs returns the paths of all inbound slot files. Enumeration
// order is whatever the directory listing gives; no ordering guarantee.
func (s *SlotStore) PendingInputs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read slot dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), inSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, e.Name()))
	}
	return paths, nil
}

// Read returns the current slot content.
func (s *SlotStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Clear truncates a processed slot to empty, keeping the file in place so
// the counterparty can write the next message.
func (s *SlotStore) Clear(path string) error {
	return os.WriteFile(path, nil, 0o644)
}

// WriteCommand overwrites the per-account outbound slot. Last write wins;
// an unread prior command is silently replaced.
func (s *SlotStore) WriteCommand(accountID string, payload []byte) error {
	if strings.ContainsAny(accountID, `/\`) || accountID == "" {
		return fmt.Errorf("invalid account id %q for slot name", accountID)
	}
	return os.WriteFile(s.CommandPath(accountID), payload, 0o644)
}

// CommandPath returns the outbound slot path for an account.
func (s *SlotStore) CommandPath(accountID string) string {
	return filepath.Join(s.dir, accountID+outSuffix)
}
