// Package settings persists the operator credentials in a flat JSON file
// (user_config.json). The file is read permissively and overwritten wholesale
// on every save.
package settings

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"

	"meeting-assistant/internal/model"
)

// DefaultPath is the settings file location when none is configured.
const DefaultPath = "user_config.json"

// Store reads and writes the operator settings file.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a settings store backed by the given file path.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file yields empty settings; missing
// keys default to empty strings.
func (s *Store) Load() (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return model.Settings{}, nil
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return model.Settings{}, fmt.Errorf("settings: failed to read %s: %w", s.path, err)
	}

	return model.Settings{
		GoogleAPIKey: v.GetString("google_api_key"),
		NotionToken:  v.GetString("notion_token"),
		NotionPageID: v.GetString("notion_page_id"),
	}, nil
}

// Save writes all three fields, fully replacing the file.
func (s *Store) Save(settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := viper.New()
	v.SetConfigType("json")
	v.Set("google_api_key", settings.GoogleAPIKey)
	v.Set("notion_token", settings.NotionToken)
	v.Set("notion_page_id", settings.NotionPageID)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("settings: failed to write %s: %w", s.path, err)
	}
	return nil
}
