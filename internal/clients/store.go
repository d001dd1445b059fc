// Package clients persists client and project records as plain YAML files,
// one directory per client under <root>/data/clients/<id>/info.yaml. The
// ledger never reads these; they only feed invoice rendering.
package clients

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"invoicemaker/internal/logger"
	"invoicemaker/pkg/models"
)

const infoFile = "info.yaml"

// ErrClientNotFound is returned when no record exists for a client ID.
var ErrClientNotFound = errors.New("client not found")

// Store reads and writes client records under one directory.
type Store struct {
	dir string
	log zerolog.Logger
}

// NewStore returns a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create clients directory: %w", err)
	}
	return &Store{dir: dir, log: logger.WithComponent("clients")}, nil
}

// IDs lists every known client ID (one directory per client).
func (s *Store) IDs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read clients directory: %w", err)
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids, nil
}

// Load reads one client record.
func (s *Store) Load(id string) (*models.Client, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, id, infoFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrClientNotFound, id)
		}
		return nil, fmt.Errorf("failed to read client %s: %w", id, err)
	}
	var client models.Client
	if err := yaml.Unmarshal(content, &client); err != nil {
		return nil, fmt.Errorf("failed to parse client %s: %w", id, err)
	}
	return &client, nil
}

// Save writes one client record, creating its directory if needed.
func (s *Store) Save(id string, client *models.Client) error {
	dir := filepath.Join(s.dir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create client directory: %w", err)
	}
	content, err := yaml.Marshal(client)
	if err != nil {
		return fmt.Errorf("failed to encode client %s: %w", id, err)
	}
	if err := os.WriteFile(filepath.Join(dir, infoFile), content, 0644); err != nil {
		return fmt.Errorf("failed to write client %s: %w", id, err)
	}
	s.log.Info().Str("client", id).Msg("Client record saved")
	return nil
}

// Create persists a new client keyed by the slug of rawName (the company
// name when present, otherwise the person's name). An existing directory is
// reused rather than treated as an error.
func (s *Store) Create(rawName string, client *models.Client) (string, error) {
	id := SlugID(rawName)
	if _, err := os.Stat(filepath.Join(s.dir, id)); err == nil {
		s.log.Warn().Str("client", id).Msg("Client ID already exists, using existing folder")
	}
	if err := s.Save(id, client); err != nil {
		return "", err
	}
	return id, nil
}

// AddProject appends a project to a client record and persists it.
func (s *Store) AddProject(id string, project models.Project) (*models.Client, error) {
	client, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	client.Projects = append(client.Projects, project)
	if err := s.Save(id, client); err != nil {
		return nil, err
	}
	return client, nil
}

// SlugID derives a stable identifier from a display name.
func SlugID(name string) string {
	return slug.Make(name)
}
