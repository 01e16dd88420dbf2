package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ckirschner/ProjectSync/model"
	"github.com/ckirschner/ProjectSync/util"
)

// Store owns the ordered project list persisted as JSON. Every mutation
// is written through immediately; external edits to the file are only
// picked up by a full Load.
type Store struct {
	path     string
	projects []model.Project
}

type fileFormat struct {
	Projects []model.Project `json:"projects"`
}

// Open loads the store at path. A missing or corrupt file yields an
// empty project list, never an error.
func Open(path string) *Store {
	s := &Store{path: path}
	s.Load()
	return s
}

func (s *Store) Load() {
	s.projects = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return
	}

	s.projects = f.Projects
}

func (s *Store) Save() error {
	data, err := json.MarshalIndent(fileFormat{Projects: s.projects}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}

	if err := util.AtomicWrite(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save project store: %w", err)
	}

	return nil
}

func (s *Store) Projects() []model.Project {
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *Store) Names() []string {
	names := make([]string, 0, len(s.projects))
	for _, p := range s.projects {
		names = append(names, p.Name)
	}

	return names
}

func (s *Store) Get(name string) (model.Project, bool) {
	for _, p := range s.projects {
		if p.Name == name {
			return p, true
		}
	}

	return model.Project{}, false
}

func (s *Store) Add(p model.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if _, exists := s.Get(p.Name); exists {
		return fmt.Errorf("project %q already exists", p.Name)
	}

	s.projects = append(s.projects, p)
	return s.Save()
}

// Update replaces the project whose name matches name. The replacement
// may carry a new name.
func (s *Store) Update(name string, p model.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.Name != name {
		if _, exists := s.Get(p.Name); exists {
			return fmt.Errorf("project %q already exists", p.Name)
		}
	}

	for i, existing := range s.projects {
		if existing.Name == name {
			s.projects[i] = p
			return s.Save()
		}
	}

	return fmt.Errorf("project %q not found", name)
}

func (s *Store) Remove(name string) error {
	for i, p := range s.projects {
		if p.Name == name {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return s.Save()
		}
	}

	return fmt.Errorf("project %q not found", name)
}
