package indexer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jasper/internal/model"
)

// ReadStatus loads the status file. A missing file means nothing is being
// indexed.
func ReadStatus(path string) (model.IndexStatus, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return model.IndexStatus{Percent: 100, Status: model.IndexStatusIdle}, nil
	}
	if err != nil {
		return model.IndexStatus{}, fmt.Errorf("read status: %w", err)
	}
	var st model.IndexStatus
	if err := json.Unmarshal(data, &st); err != nil {
		return model.IndexStatus{}, fmt.Errorf("decode status: %w", err)
	}
	return st, nil
}

// WriteStatus stamps st and replaces the status file atomically.
func WriteStatus(path string, st model.IndexStatus) error {
	now := time.Now().UTC()
	st.UpdatedAt = &now
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create status dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return os.Rename(tmp, path)
}
