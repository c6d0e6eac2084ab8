package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type MemoryPersister struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryPersister) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryPersister) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryPersister) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type fileContents struct {
	AccessToken string `json:"access_token"`
}

// FilePersister stores the token in a JSON file readable only by its owner.
type FilePersister struct {
	Path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{Path: path}
}

func (f *FilePersister) Load() (string, error) {
	raw, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var c fileContents
	if err := json.Unmarshal(raw, &c); err != nil {
		return "", err
	}
	return c.AccessToken, nil
}

func (f *FilePersister) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(fileContents{AccessToken: token})
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, raw, 0o600)
}

func (f *FilePersister) Clear() error {
	err := os.Remove(f.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
