package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// maxLineSize bounds a single JSONL line. Notes can be long.
const maxLineSize = 16 * 1024 * 1024

// readJSONL returns the non-blank lines of a JSONL file. A missing file
// yields no lines and no error. Lines that are not valid JSON fail the
// read with ErrCorruptData.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(bytes.TrimSpace(b)) == 0 {
			continue
		}
		if !json.Valid(b) {
			return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), line, types.ErrCorruptData)
		}
		cp := make([]byte, len(b))
		copy(cp, b)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically replaces path with one line per record using the
// temp-file, fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", step, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// decodeAll unmarshals every line into a fresh T. Decode and validation
// failures wrap ErrCorruptData.
func decodeAll[T any](name string, lines []json.RawMessage) ([]*T, error) {
	out := make([]*T, 0, len(lines))
	for i, line := range lines {
		v := new(T)
		if err := json.Unmarshal(line, v); err != nil {
			return nil, fmt.Errorf("%s record %d: %w: %w", name, i+1, types.ErrCorruptData, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// encodeAll marshals every value into one line each.
func encodeAll[T json.Marshaler](values []T) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		b, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
