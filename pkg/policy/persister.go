// Package policy implements the per-guild policy store: durable guild
// configuration, the warning ledger and its persistence backends.
package policy

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	json "github.com/goccy/go-json"
)

// Persister is the durable storage behind the Store. Save receives the
// entire policy set; a successful Save must survive a process restart and
// a crashed one must never corrupt previously saved data.
type Persister interface {
	Load() (map[string]*models.GuildPolicy, error)
	Save(policies map[string]*models.GuildPolicy) error
}

// FileStore persists the policy set as a single JSON document keyed by
// guild id. Writes go to a temp file in the same directory followed by a
// rename, so readers never observe a partial document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the policy document. A missing file is an empty store, not an
// error. Loaded policies pass through FillDefaults so documents written by
// older versions always come back with a complete schema.
func (fs *FileStore) Load() (map[string]*models.GuildPolicy, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]*models.GuildPolicy), nil
		}
		return nil, fmt.Errorf("leyendo %s: %w", fs.path, err)
	}

	policies := make(map[string]*models.GuildPolicy)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &policies); err != nil {
			return nil, fmt.Errorf("decodificando %s: %w", fs.path, err)
		}
	}

	for guildID, p := range policies {
		p.FillDefaults(guildID)
	}

	return policies, nil
}

// Save atomically replaces the policy document.
func (fs *FileStore) Save(policies map[string]*models.GuildPolicy) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := json.MarshalIndent(policies, "", "  ")
	if err != nil {
		return fmt.Errorf("codificando políticas: %w", err)
	}

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creando %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".policies-*.json")
	if err != nil {
		return fmt.Errorf("creando archivo temporal: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribiendo %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrando %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazando %s: %w", fs.path, err)
	}

	return nil
}
