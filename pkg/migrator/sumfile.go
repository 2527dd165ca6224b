package migrator

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const hashPrefix = "h1:"

type (
	// SumFile is the integrity record of a migration directory. File hashes are
	// chained: each one covers the file's content and the hash of the file before it.
	SumFile struct {
		files []sumEntry
		// TotalHash is "h1:" followed by the base64 sha256 of all file hashes. It's
		// empty until the file is written or loaded.
		TotalHash string
	}

	sumEntry struct {
		Name string
		Hash []byte
	}
)

// NewSumFile returns an empty SumFile.
func NewSumFile() *SumFile {
	return &SumFile{}
}

// LoadSumFile parses a SumFile previously written with WriteTo. Empty input yields an
// empty SumFile.
func LoadSumFile(r io.Reader) (*SumFile, error) {
	sum := NewSumFile()
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return sum, errors.Wrap(scanner.Err(), "failed to read sum file")
	}

	total := strings.TrimSpace(scanner.Text())
	if total == "" {
		return sum, nil
	}

	if !strings.HasPrefix(total, hashPrefix) {
		return nil, errors.Errorf("invalid total hash: %s", total)
	}
	sum.TotalHash = total

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, hash, ok := strings.Cut(line, " ")
		if !ok || !strings.HasPrefix(hash, hashPrefix) {
			return nil, errors.Errorf("invalid sum file entry: %s", line)
		}

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(hash, hashPrefix))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode hash of %s", name)
		}

		sum.files = append(sum.files, sumEntry{Name: name, Hash: raw})
	}

	return sum, errors.Wrap(scanner.Err(), "failed to read sum file")
}

// Add hashes the content read from r and appends it under name.
func (s *SumFile) Add(name string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}

	s.AddFile(name, content)
	return nil
}

// AddFile appends a file. The first file's hash is sha256(content); every later one
// is sha256(content + previous hash).
func (s *SumFile) AddFile(name string, content []byte) {
	h := sha256.New()
	h.Write(content)

	if n := len(s.files); n > 0 {
		h.Write(s.files[n-1].Hash)
	}

	s.files = append(s.files, sumEntry{Name: name, Hash: h.Sum(nil)})
}

// Files returns the number of files recorded.
func (s *SumFile) Files() int {
	return len(s.files)
}

// Equal reports whether both sum files record the same files with the same hashes.
func (s *SumFile) Equal(other *SumFile) bool {
	if other == nil || len(s.files) != len(other.files) {
		return false
	}

	for i, entry := range s.files {
		if entry.Name != other.files[i].Name || !bytes.Equal(entry.Hash, other.files[i].Hash) {
			return false
		}
	}

	return true
}

// WriteTo writes the total hash followed by one "<name> h1:<hash>" line per file. It
// implements io.WriterTo.
func (s *SumFile) WriteTo(w io.Writer) (int64, error) {
	s.computeTotalHash()

	var written int64
	n, err := fmt.Fprintln(w, s.TotalHash)
	written += int64(n)
	if err != nil {
		return written, errors.Wrap(err, "failed to write total hash")
	}

	for _, entry := range s.files {
		n, err := fmt.Fprintf(w, "%s %s%s\n", entry.Name, hashPrefix, base64.StdEncoding.EncodeToString(entry.Hash))
		written += int64(n)
		if err != nil {
			return written, errors.Wrapf(err, "failed to write hash of %s", entry.Name)
		}
	}

	return written, nil
}

func (s *SumFile) computeTotalHash() {
	if len(s.files) == 0 {
		s.TotalHash = ""
		return
	}

	h := sha256.New()
	for _, entry := range s.files {
		h.Write(entry.Hash)
	}

	s.TotalHash = hashPrefix + base64.StdEncoding.EncodeToString(h.Sum(nil))
}
