// Package vault persists the session pair across restarts, mirroring the
// two-key layout the browser client used: a raw bearer token and the
// serialized user profile.
package vault

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"stayfront/internal/domain"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

type FileVault struct{ dir string }

func New(dir string) (*FileVault, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileVault{dir: dir}, nil
}

// Save writes the pair. Each file goes through a temp-and-rename so a crash
// mid-write never leaves a torn entry; user first, token last, so a token on
// disk implies a readable profile next to it.
func (v *FileVault) Save(user domain.User, token string) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(v.dir, userFile), b); err != nil {
		return err
	}
	return writeAtomic(filepath.Join(v.dir, tokenFile), []byte(token))
}

// Load returns the persisted pair. A half-present pair counts as absent and
// is cleaned up, keeping the all-or-nothing session invariant on disk.
func (v *FileVault) Load() (domain.User, string, bool, error) {
	tok, terr := os.ReadFile(filepath.Join(v.dir, tokenFile))
	ub, uerr := os.ReadFile(filepath.Join(v.dir, userFile))

	if errors.Is(terr, fs.ErrNotExist) && errors.Is(uerr, fs.ErrNotExist) {
		return domain.User{}, "", false, nil
	}
	if terr != nil || uerr != nil || len(tok) == 0 {
		_ = v.Clear()
		if terr != nil && !errors.Is(terr, fs.ErrNotExist) {
			return domain.User{}, "", false, terr
		}
		if uerr != nil && !errors.Is(uerr, fs.ErrNotExist) {
			return domain.User{}, "", false, uerr
		}
		return domain.User{}, "", false, nil
	}

	var u domain.User
	if err := json.Unmarshal(ub, &u); err != nil {
		_ = v.Clear()
		return domain.User{}, "", false, nil
	}
	return u, string(tok), true, nil
}

// Clear removes both entries; token first so a reader never sees a token
// without its profile.
func (v *FileVault) Clear() error {
	terr := os.Remove(filepath.Join(v.dir, tokenFile))
	uerr := os.Remove(filepath.Join(v.dir, userFile))
	if terr != nil && !errors.Is(terr, fs.ErrNotExist) {
		return terr
	}
	if uerr != nil && !errors.Is(uerr, fs.ErrNotExist) {
		return uerr
	}
	return nil
}

func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
