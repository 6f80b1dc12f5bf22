package test

import (
	"context"
	"sort"
	"time"

	"github.com/kiralago/storefront/internal/media"
)

// FileStoreStub keeps files in a map for tests.
type FileStoreStub struct {
	Files   map[string][]byte
	Mods    map[string]time.Time
	SaveErr error
	DelErr  error
	ListErr error
	Deleted []string
}

// NewFileStoreStub constructs the stub with initialized maps.
func NewFileStoreStub() *FileStoreStub {
	return &FileStoreStub{
		Files: make(map[string][]byte),
		Mods:  make(map[string]time.Time),
	}
}

// Save stores the bytes under name.
func (s *FileStoreStub) Save(ctx context.Context, name string, data []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Files[name] = data
	if _, ok := s.Mods[name]; !ok {
		s.Mods[name] = time.Now()
	}
	return nil
}

// Delete removes the file and records the call.
func (s *FileStoreStub) Delete(ctx context.Context, name string) (bool, error) {
	s.Deleted = append(s.Deleted, name)
	if s.DelErr != nil {
		return false, s.DelErr
	}
	if _, ok := s.Files[name]; !ok {
		return false, nil
	}
	delete(s.Files, name)
	delete(s.Mods, name)
	return true, nil
}

// Exists reports whether the name was saved.
func (s *FileStoreStub) Exists(ctx context.Context, name string) (bool, error) {
	_, ok := s.Files[name]
	return ok, nil
}

// List returns stored entries sorted by name.
func (s *FileStoreStub) List(ctx context.Context) ([]media.Entry, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	entries := make([]media.Entry, 0, len(s.Files))
	for name := range s.Files {
		entries = append(entries, media.Entry{Name: name, ModTime: s.Mods[name]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// URL returns a deterministic public reference.
func (s *FileStoreStub) URL(name string) string {
	return "/media/profile_pics/" + name
}
