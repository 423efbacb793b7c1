package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Kravtmk/whoami-app/internal/apperror"
	"github.com/Kravtmk/whoami-app/internal/model"
)

// jsonStore keeps roles as a JSON array and day logs as a JSON object keyed
// by "<userId>:<day>". Day logs are cached in memory and the whole document is
// rewritten on every save.
type jsonStore struct {
	mu        sync.RWMutex
	rolesFile string
	daysFile  string
	days      map[string]*model.DayLog
}

func NewJSONStore(rolesFile, daysFile string) (Store, error) {
	for _, f := range []string{rolesFile, daysFile} {
		if err := os.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrCannotWriteStore, err)
		}
	}
	s := &jsonStore{
		rolesFile: rolesFile,
		daysFile:  daysFile,
		days:      make(map[string]*model.DayLog),
	}
	if _, err := readJSONFile(daysFile, &s.days); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrCannotReadStore, daysFile, err)
	}
	if s.days == nil {
		s.days = make(map[string]*model.DayLog)
	}
	return s, nil
}

// readJSONFile reports false for a missing or empty file.
func readJSONFile(path string, v any) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// atomicWriteFileJSON writes through a temp file in the same directory, so a
// reader sees either the old or the new document.
func atomicWriteFileJSON(filePath string, data any) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}
	return os.Rename(tempFile, filePath)
}

func (s *jsonStore) LoadRoles(ctx context.Context) ([]model.Role, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var roles []model.Role
	found, err := readJSONFile(s.rolesFile, &roles)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", apperror.ErrCannotReadStore, s.rolesFile, err)
	}
	if found && roles == nil {
		roles = []model.Role{}
	}
	return roles, found, nil
}

func (s *jsonStore) SaveRoles(ctx context.Context, roles []model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if roles == nil {
		roles = []model.Role{}
	}
	if err := atomicWriteFileJSON(s.rolesFile, roles); err != nil {
		return fmt.Errorf("%w: %s: %w", apperror.ErrCannotWriteStore, s.rolesFile, err)
	}
	return nil
}

func (s *jsonStore) GetDayLog(ctx context.Context, userID, day string) (*model.DayLog, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.days[model.DayKey(userID, day)]
	if !ok {
		return nil, false, nil
	}
	return log.Clone(), true, nil
}

func (s *jsonStore) SaveDayLog(ctx context.Context, log *model.DayLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := log.Key()
	prev, existed := s.days[key]
	s.days[key] = log.Clone()
	if err := atomicWriteFileJSON(s.daysFile, s.days); err != nil {
		// откатываем кэш, файл остался прежним
		if existed {
			s.days[key] = prev
		} else {
			delete(s.days, key)
		}
		return fmt.Errorf("%w: %s: %w", apperror.ErrCannotWriteStore, s.daysFile, err)
	}
	return nil
}

func (s *jsonStore) Close() error {
	return nil
}

var _ Store = (*jsonStore)(nil)
