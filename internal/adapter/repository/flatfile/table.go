package flatfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// table is one shared CSV file holding all rows of a record kind. The
// first line is a fixed header; every data row has exactly as many
// fields as the header. keyLen is the length of the natural-key prefix:
// rows agreeing on their first keyLen fields are versions of the same
// record.
type table struct {
	path   string
	header []string
	keyLen int
}

// load reads the whole table. A missing file is an empty table; a row
// with the wrong number of fields or a foreign header is a load error
// for the table, never a skipped row.
func (t *table) load() ([][]string, error) {
	f, err := os.Open(t.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(t.header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", filepath.Base(t.path), err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if !equalFields(records[0], t.header) {
		return nil, fmt.Errorf("table %s: unexpected header %v", filepath.Base(t.path), records[0])
	}

	return records[1:], nil
}

// write replaces the whole table. The new content lands in a temp file
// in the same directory first and is renamed over the old one, so a
// reader never observes a half-written table.
func (t *table) write(rows [][]string) error {
	f, err := os.CreateTemp(filepath.Dir(t.path), filepath.Base(t.path)+".tmp")
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}

	return os.Rename(f.Name(), t.path)
}

func (t *table) key(row []string) string {
	return strings.Join(row[:t.keyLen], "\x1f")
}

// merge anti-joins row against existing rows by natural key before
// appending: an unchanged row is a no-op, a changed row supersedes its
// old version in place, a new key is appended. Plain concatenation
// would duplicate rows under re-submission.
func (t *table) merge(existing [][]string, row []string) [][]string {
	k := t.key(row)
	for i, old := range existing {
		if t.key(old) == k {
			existing[i] = row
			return existing
		}
	}
	return append(existing, row)
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
