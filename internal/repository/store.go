package repository

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"atm-teller/internal/domain"
	"atm-teller/internal/errors"
)

// Store owns the record file. It assumes exclusive access for the
// lifetime of the process; no file locking is done.
type Store struct {
	path         string
	atomicWrites bool
	logger       *slog.Logger
}

type Option func(*Store)

// WithAtomicWrites makes full rewrites go through a temp file and a
// rename instead of truncating the record file in place.
func WithAtomicWrites(enabled bool) Option {
	return func(s *Store) {
		s.atomicWrites = enabled
	}
}

// NewStore creates a new Store instance
func NewStore(path string, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

// Account returns an AccountRepository backed by this store. A nil
// source falls back to domain.RandomIDGroup.
func (s *Store) Account(next domain.IDGroupSource) domain.AccountRepository {
	return NewAccountRepository(s, s.logger, next)
}

// Init creates the record file with its header row when it does not
// exist yet. An existing file is left untouched.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.StoreFailure("failed to stat account store", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.StoreFailure("failed to create account store directory", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return errors.StoreFailure("failed to create account store", err)
	}
	if err := writeCSV(f, nil); err != nil {
		f.Close()
		return errors.StoreFailure("failed to write account store header", err)
	}
	if err := f.Close(); err != nil {
		return errors.StoreFailure("failed to close account store", err)
	}

	s.logger.Info("Account store initialized", "path", s.path)
	return nil
}

// readRows returns every data row after validating the header.
func (s *Store) readRows() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		s.logger.Error("Failed to open account store", "path", s.path, "error", err)
		return nil, errors.StoreFailure("failed to open account store", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = numColumns

	first, err := r.Read()
	if err == io.EOF {
		return nil, errors.NewAppError(errors.StoreIO, "account store has no header")
	}
	if err != nil {
		return nil, errors.StoreFailure("failed to read account store header", err)
	}
	if !validHeader(first) {
		s.logger.Error("Unexpected account store header", "path", s.path, "header", first)
		return nil, errors.NewAppError(errors.StoreIO, "unexpected account store header")
	}

	rows, err := r.ReadAll()
	if err != nil {
		s.logger.Error("Failed to read account store", "path", s.path, "error", err)
		return nil, errors.StoreFailure("failed to read account store", err)
	}
	return rows, nil
}

// appendRow adds one row to the end of the file. The file must exist.
func (s *Store) appendRow(row []string) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return errors.StoreFailure("failed to open account store for append", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		f.Close()
		return errors.StoreFailure("failed to append account", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.StoreFailure("failed to append account", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errors.StoreFailure("failed to sync account store", err)
	}
	if err := f.Close(); err != nil {
		return errors.StoreFailure("failed to close account store", err)
	}
	return nil
}

// writeRows replaces the whole file with the header followed by rows.
func (s *Store) writeRows(rows [][]string) error {
	if s.atomicWrites {
		return s.replaceFile(rows)
	}

	// In-place truncate: a crash between truncate and flush loses data.
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.StoreFailure("failed to open account store for rewrite", err)
	}
	if err := writeCSV(f, rows); err != nil {
		f.Close()
		return errors.StoreFailure("failed to rewrite account store", err)
	}
	if err := f.Close(); err != nil {
		return errors.StoreFailure("failed to close account store", err)
	}
	return nil
}

func (s *Store) replaceFile(rows [][]string) error {
	info, err := os.Stat(s.path)
	if err != nil {
		return errors.StoreFailure("failed to stat account store", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.StoreFailure("failed to create temp account store", err)
	}
	tmpName := tmp.Name()

	if err := writeCSV(tmp, rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.StoreFailure("failed to write temp account store", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.StoreFailure("failed to close temp account store", err)
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		os.Remove(tmpName)
		return errors.StoreFailure("failed to set account store permissions", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.StoreFailure("failed to replace account store", err)
	}
	return nil
}

func writeCSV(f *os.File, rows [][]string) error {
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Sync()
}
