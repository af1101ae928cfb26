// Package settings implementa el almacén de preferencias del dashboard sobre
// un archivo JSON plano: se lee al arranque y se escribe en cada guardado
// explícito. Los buckets son documentos del cliente, así que se persisten tal
// cual y las claves conservan su forma exacta.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
)

// FileStore almacén clave-valor por bucket respaldado en archivo.
type FileStore struct {
	mu      sync.Mutex
	path    string
	buckets map[string]map[string]any
}

// NewFileStore abre (o prepara) el archivo de settings. Un archivo ausente no
// es un error: el almacén arranca vacío y se crea en el primer guardado.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, buckets: map[string]map[string]any{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.buckets); err != nil {
			return nil, err
		}
	}
	return s, nil
}

var _ repository.SettingsStore = (*FileStore)(nil)

// Get devuelve una copia del contenido del bucket (nil si nunca se guardó).
func (s *FileStore) Get(bucket string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.buckets[bucket]
	if !ok {
		return nil, nil
	}
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out, nil
}

// Put sobreescribe el bucket completo y persiste el archivo.
func (s *FileStore) Put(bucket string, values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	s.buckets[bucket] = copied
	raw, err := json.MarshalIndent(s.buckets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
