package audio

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Store is the durable key→blob cache for audio artifacts. Ids are opaque
// slash-separated strings safe for use as file names ("nouns/der Apfel.mp3").
// Keys are write-once from this program's point of view.
type Store interface {
	Has(id string) bool
	Get(id string) ([]byte, error)
	Put(id string, data []byte) error
}

// Lister enumerates cached artifacts under a prefix; the listen-and-type
// decks are built from it.
type Lister interface {
	List(prefix string) ([]string, error)
}

// FileStore keeps artifacts as plain files under a root directory.
type FileStore struct {
	root string
}

// NewFileStore creates the root directory if needed and returns the store.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create audio cache dir: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Root returns the cache directory.
func (s *FileStore) Root() string {
	return s.root
}

func (s *FileStore) filePath(id string) string {
	return filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+id)))
}

// Has reports whether an artifact exists for the id.
func (s *FileStore) Has(id string) bool {
	info, err := os.Stat(s.filePath(id))
	return err == nil && info.Mode().IsRegular()
}

// Get reads the artifact bytes for the id.
func (s *FileStore) Get(id string) ([]byte, error) {
	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		return nil, fmt.Errorf("read cached audio %s: %w", id, err)
	}
	return data, nil
}

// Put persists an artifact. The write goes through a temp file and a rename
// so a crash never leaves a half-written clip behind.
func (s *FileStore) Put(id string, data []byte) error {
	dst := s.filePath(id)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create audio dir for %s: %w", id, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".wortlaut-*")
	if err != nil {
		return fmt.Errorf("cache audio %s: %w", id, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cache audio %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache audio %s: %w", id, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache audio %s: %w", id, err)
	}
	return nil
}

// List returns the ids of cached artifacts directly under a prefix
// directory, sorted by name.
func (s *FileStore) List(prefix string) ([]string, error) {
	dir := s.filePath(prefix)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list cached audio under %s: %w", prefix, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ids = append(ids, path.Join(prefix, e.Name()))
	}
	sort.Strings(ids)
	return ids, nil
}
