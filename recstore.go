package bookstore

import (
	"fmt"
	"io"
	"os"
)

// Codec describes the fixed binary layout of one record type: its
// encoded size, how to encode and decode it, and which field is the
// lookup key.
type Codec[R any] interface {
	Size() int
	Key(R) string
	Encode(R, []byte)
	Decode([]byte) R
}

// RecStore persists a homogeneous sequence of fixed-size records in a
// single backing file, in append order.
//
// The store itself never enforces key uniqueness: Append writes
// unconditionally, FindByKey returns the first match, and UpsertByKey
// replaces every record whose key matches. First-match semantics
// elsewhere therefore rely on callers pre-checking before Append.
type RecStore[R any] struct {
	path  string
	codec Codec[R]
}

// NewRecStore returns a store over the given backing file. The file is
// created lazily on the first mutation.
func NewRecStore[R any](path string, codec Codec[R]) *RecStore[R] {
	return &RecStore[R]{path: path, codec: codec}
}

// ScanAll returns every record in storage order. An absent or
// unreadable backing file reads as an empty store.
func (s *RecStore[R]) ScanAll() []R {
	f, err := os.Open(s.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var recs []R
	buf := make([]byte, s.codec.Size())
	for {
		if _, err := io.ReadFull(f, buf); err != nil {
			// EOF ends the scan; a partial or failed read is
			// treated the same way, dropping the ragged tail.
			return recs
		}
		recs = append(recs, s.codec.Decode(buf))
	}
}

// FindByKey scans from the start and returns the first record whose
// key equals key.
func (s *RecStore[R]) FindByKey(key string) (R, bool) {
	for _, rec := range s.ScanAll() {
		if s.codec.Key(rec) == key {
			return rec, true
		}
	}
	var zero R
	return zero, false
}

// Append writes rec at the end of the backing file. No uniqueness
// check is performed.
func (s *RecStore[R]) Append(rec R) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("record store %s: %w", s.path, err)
	}
	defer f.Close()

	buf := make([]byte, s.codec.Size())
	s.codec.Encode(rec, buf)
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("record store %s: append: %w", s.path, err)
	}
	return nil
}

// UpsertByKey replaces every record whose key matches rec's key, or
// appends rec if none matched. The whole sequence is rewritten either
// way.
func (s *RecStore[R]) UpsertByKey(rec R) error {
	key := s.codec.Key(rec)
	recs := s.ScanAll()
	found := false
	for i := range recs {
		if s.codec.Key(recs[i]) == key {
			recs[i] = rec
			found = true
		}
	}
	if !found {
		recs = append(recs, rec)
	}
	return s.rewrite(recs)
}

// DeleteByKey removes every record whose key matches and reports
// whether at least one was removed.
func (s *RecStore[R]) DeleteByKey(key string) (bool, error) {
	recs := s.ScanAll()
	kept := recs[:0]
	for _, rec := range recs {
		if s.codec.Key(rec) != key {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(recs) {
		return false, nil
	}
	return true, s.rewrite(kept)
}

// rewrite truncates the backing file and writes the full sequence.
func (s *RecStore[R]) rewrite(recs []R) error {
	f, err := os.OpenFile(s.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("record store %s: %w", s.path, err)
	}
	defer f.Close()

	buf := make([]byte, s.codec.Size())
	for _, rec := range recs {
		s.codec.Encode(rec, buf)
		if _, err := f.Write(buf); err != nil {
			return fmt.Errorf("record store %s: rewrite: %w", s.path, err)
		}
	}
	return nil
}
