package staging

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dchest/safefile"
	"github.com/pkg/errors"
)

// A Receipt describes what was installed to a folder. It's written to
// `./.minemod/receipt.json` when an apply completes, and read back on
// later applies so stale files can be reported.
type Receipt struct {
	GameID    string `json:"gameId"`
	Installer string `json:"installer"`

	// Slash-separated paths, relative to the folder.
	Files []string `json:"files"`
}

func ReceiptPath(folder string) string {
	return filepath.Join(folder, ".minemod", "receipt.json")
}

// ReadReceipt returns nil without error when no receipt exists yet.
func ReadReceipt(folder string) (*Receipt, error) {
	data, err := os.ReadFile(ReceiptPath(folder))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}

	receipt := Receipt{}
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, errors.WithMessage(err, "decoding receipt")
	}
	return &receipt, nil
}

func (r *Receipt) WriteReceipt(folder string) error {
	p := ReceiptPath(folder)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.WithStack(err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	// atomic write: a crashed apply must not leave a torn receipt
	if err := safefile.WriteFile(p, data, 0o644); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (r *Receipt) HasFiles() bool {
	return r != nil && len(r.Files) > 0
}
