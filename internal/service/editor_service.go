package service

import (
	"errors"
	"fmt"
	"sync"

	"sheweds-backend/internal/editor"
	"sheweds-backend/internal/models"
	"sheweds-backend/internal/sections"
	"sheweds-backend/pkg/logger"
)

var ErrNoSession = errors.New("no editing session for page")

type pageEditor struct {
	session *editor.Session
	hub     *editor.Hub
}

// EditorService owns the live editing sessions. Each open page keeps a
// working copy and a hub; every mutation rebroadcasts the full page config
// so previews never have to merge diffs. Nothing persists until Save.
type EditorService struct {
	mu       sync.Mutex
	pages    *PageService
	registry *sections.Registry
	open     map[string]*pageEditor
}

func NewEditorService(pages *PageService, registry *sections.Registry) *EditorService {
	return &EditorService{
		pages:    pages,
		registry: registry,
		open:     make(map[string]*pageEditor),
	}
}

// Open starts (or resumes) an editing session for the page with the given
// slug and returns the current working copy.
func (s *EditorService) Open(slug string) (*models.PageConfig, error) {
	page, err := s.pages.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pe, ok := s.open[page.ID]
	if !ok {
		pe = &pageEditor{session: editor.NewSession(*page), hub: editor.NewHub()}
		s.open[page.ID] = pe
		logger.Info("Editing session opened", map[string]interface{}{"page": page.Slug})
	}

	snapshot := pe.session.Snapshot()
	return &snapshot, nil
}

// Subscribe attaches a preview or editor stream to the page's hub.
func (s *EditorService) Subscribe(pageID string) (<-chan editor.Message, func(), error) {
	pe, err := s.editorFor(pageID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := pe.hub.Subscribe()
	return ch, cancel, nil
}

// Snapshot returns the current working copy.
func (s *EditorService) Snapshot(pageID string) (*models.PageConfig, error) {
	pe, err := s.editorFor(pageID)
	if err != nil {
		return nil, err
	}
	snapshot := pe.session.Snapshot()
	return &snapshot, nil
}

// AddSection appends a new section of a registered type.
func (s *EditorService) AddSection(pageID, sectionType string) (*models.Section, error) {
	if _, ok := s.registry.Descriptor(sectionType); !ok {
		return nil, fmt.Errorf("unknown section type: %s", sectionType)
	}

	pe, err := s.editorFor(pageID)
	if err != nil {
		return nil, err
	}

	section, err := pe.session.AddSection(sectionType)
	if err != nil {
		return nil, err
	}

	s.broadcast(pe)
	return &section, nil
}

func (s *EditorService) UpdateContent(pageID, sectionID, field string, value interface{}) error {
	return s.mutate(pageID, func(pe *pageEditor) error {
		return pe.session.UpdateContent(sectionID, field, value)
	})
}

// UpdateContentRaw applies a raw JSON value; malformed documents are dropped
// without error.
func (s *EditorService) UpdateContentRaw(pageID, sectionID, field, rawJSON string) error {
	return s.mutate(pageID, func(pe *pageEditor) error {
		return pe.session.UpdateContentRaw(sectionID, field, rawJSON)
	})
}

func (s *EditorService) UpdateSetting(pageID, sectionID, field string, value interface{}) error {
	return s.mutate(pageID, func(pe *pageEditor) error {
		return pe.session.UpdateSetting(sectionID, field, value)
	})
}

func (s *EditorService) Reorder(pageID string, from, to int) error {
	return s.mutate(pageID, func(pe *pageEditor) error {
		return pe.session.Reorder(from, to)
	})
}

func (s *EditorService) ToggleHidden(pageID, sectionID string) error {
	return s.mutate(pageID, func(pe *pageEditor) error {
		return pe.session.ToggleHidden(sectionID)
	})
}

func (s *EditorService) RemoveSection(pageID, sectionID string) error {
	return s.mutate(pageID, func(pe *pageEditor) error {
		return pe.session.Remove(sectionID)
	})
}

// Replace swaps the whole working copy, used when the editor client pushes a
// complete config.
func (s *EditorService) Replace(pageID string, config models.PageConfig) error {
	return s.mutate(pageID, func(pe *pageEditor) error {
		pe.session.Replace(config)
		return nil
	})
}

// SelectSection relays a preview click back to any attached editor clients.
// It does not change the working copy.
func (s *EditorService) SelectSection(pageID, sectionID string) error {
	pe, err := s.editorFor(pageID)
	if err != nil {
		return err
	}

	pe.hub.Broadcast(editor.Message{
		Type:    editor.TypeSelectSection,
		Payload: map[string]string{"id": sectionID},
	})
	return nil
}

// Save persists the working copy. The stored document is replaced outright;
// concurrent saves resolve last-write-wins.
func (s *EditorService) Save(pageID string) (*models.PageConfig, error) {
	pe, err := s.editorFor(pageID)
	if err != nil {
		return nil, err
	}

	snapshot := pe.session.Snapshot()
	if err := s.pages.Save(snapshot); err != nil {
		return nil, err
	}

	logger.Info("Page saved from editor", map[string]interface{}{"page": snapshot.Slug})
	return &snapshot, nil
}

func (s *EditorService) mutate(pageID string, apply func(*pageEditor) error) error {
	pe, err := s.editorFor(pageID)
	if err != nil {
		return err
	}
	if err := apply(pe); err != nil {
		return err
	}
	s.broadcast(pe)
	return nil
}

func (s *EditorService) editorFor(pageID string) (*pageEditor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pe, ok := s.open[pageID]
	if !ok {
		return nil, ErrNoSession
	}
	return pe, nil
}

func (s *EditorService) broadcast(pe *pageEditor) {
	pe.hub.Broadcast(editor.Message{
		Type:    editor.TypeUpdatePageConfig,
		Payload: pe.session.Snapshot(),
	})
}
