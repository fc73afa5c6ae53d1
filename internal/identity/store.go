package identity

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/denoise-ai/denoise/client/internal/types"
)

// storeFileName is the single durable record holding the persisted identity,
// the analogue of a browser localStorage key.
const storeFileName = "denoise_user.json"

// Store persists the signed-in Identity as a JSON file so it survives a
// process restart. A missing or corrupt file is treated as "no identity";
// corrupt content is removed, not repaired.
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the identity file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "denoise", storeFileName), nil
}

// Load reads the persisted identity. It returns (nil, nil) when no identity
// is stored; a file that fails to parse is deleted and reported as absent.
func (s *Store) Load() (*types.Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var ident types.Identity
	if err := json.Unmarshal(data, &ident); err != nil || ident.ID == "" {
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &ident, nil
}

// Save writes the identity record, creating the parent directory if needed.
func (s *Store) Save(ident *types.Identity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(ident)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the persisted identity. Clearing an absent record is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
