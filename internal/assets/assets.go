package assets

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

// Store serves the static assets embedded into generated reports. Assets
// are read from disk once and cached; the store is read-only after that,
// so concurrent report generations need no coordination.
type Store struct {
	logoPath string

	once sync.Once
	logo []byte
	err  error
}

// NewStore validates that the configured logo asset exists and returns a
// store rooted at it.
func NewStore(logoPath string) (*Store, error) {
	if logoPath == "" {
		return nil, fmt.Errorf("logo path is required")
	}
	if _, err := os.Stat(logoPath); err != nil {
		return nil, fmt.Errorf("logo asset: %w", err)
	}
	return &Store{logoPath: logoPath}, nil
}

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Logo returns the raw PNG bytes of the report logo. The file is read on
// first use; later calls return the cached copy.
func (s *Store) Logo() ([]byte, error) {
	s.once.Do(func() {
		data, err := os.ReadFile(s.logoPath)
		if err != nil {
			s.err = fmt.Errorf("failed to read logo asset: %w", err)
			return
		}
		if !bytes.HasPrefix(data, pngMagic) {
			s.err = fmt.Errorf("logo asset %s is not a PNG image", s.logoPath)
			return
		}
		s.logo = data
	})
	return s.logo, s.err
}

// Path returns the absolute or configured path of the logo asset.
func (s *Store) Path() string {
	return s.logoPath
}
