// Package services provides application-level orchestration services
package services

import (
	"encoding/json"
	"sync"

	"github.com/luxeestates/luxegate-go/internal/domain/entities/catalog"
	"github.com/luxeestates/luxegate-go/internal/domain/entities/leads"
	"github.com/luxeestates/luxegate-go/internal/domain/entities/session"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/store"
)

// StateService owns the in-memory working state (catalog, lead log, session)
// and keeps it synchronized with the persisted store. All mutations persist
// first and update memory only on success, so the two never diverge: a failed
// write leaves memory on the last durably stored state.
type StateService struct {
	store  *store.Store
	logger *logging.ChanneledLogger

	mu       sync.RWMutex
	projects []catalog.Project
	leadLog  []leads.Lead
	sess     session.State
}

// NewStateService creates a state service over the persisted store.
func NewStateService(st *store.Store, logger *logging.ChanneledLogger) *StateService {
	return &StateService{
		store:  st,
		logger: logger,
	}
}

// Initialize hydrates working state from the store. Each key degrades
// independently: a missing value, a malformed value, or a failed read all
// fall back to that key's default without disturbing the others.
// Initialization never fails, so an unavailable store at startup still
// yields a usable seed-state instance.
func (s *StateService) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = s.loadCatalog()
	s.leadLog = s.loadLeads()
	s.sess = s.loadSession()

	s.logger.System().Info("Session state initialized",
		"projects", len(s.projects),
		"leads", len(s.leadLog),
		"unlocked", s.sess.Unlocked,
		"adminLoggedIn", s.sess.AdminLoggedIn)
}

func (s *StateService) loadCatalog() []catalog.Project {
	value, found, err := s.store.Get(store.KeyCatalog)
	if err != nil {
		s.logger.Catalog().Warn("Catalog read failed, falling back to seed", "error", err.Error())
		return catalog.Seed()
	}
	if !found {
		return catalog.Seed()
	}

	var projects []catalog.Project
	if err := json.Unmarshal([]byte(value), &projects); err != nil {
		s.logger.Catalog().Warn("Malformed catalog entry, falling back to seed", "error", err.Error())
		return catalog.Seed()
	}
	if projects == nil {
		projects = []catalog.Project{}
	}
	return projects
}

func (s *StateService) loadLeads() []leads.Lead {
	value, found, err := s.store.Get(store.KeyLeads)
	if err != nil {
		s.logger.Leads().Warn("Leads read failed, falling back to empty log", "error", err.Error())
		return []leads.Lead{}
	}
	if !found {
		return []leads.Lead{}
	}

	var leadLog []leads.Lead
	if err := json.Unmarshal([]byte(value), &leadLog); err != nil {
		s.logger.Leads().Warn("Malformed leads entry, falling back to empty log", "error", err.Error())
		return []leads.Lead{}
	}
	if leadLog == nil {
		leadLog = []leads.Lead{}
	}
	return leadLog
}

func (s *StateService) loadSession() session.State {
	sess := session.Locked()

	// Presence of the unlock token is the unlock signal. The token is never
	// inspected here, so a value of any shape unlocks.
	token, found, err := s.store.Get(store.KeyUnlockToken)
	if err != nil {
		s.logger.Session().Warn("Unlock token read failed, falling back to locked", "error", err.Error())
		return sess
	}
	if found && token != "" {
		sess.Unlocked = true
		sess.UnlockToken = token
	}

	flag, found, err := s.store.Get(store.KeyAdminFlag)
	if err != nil {
		s.logger.Session().Warn("Admin flag read failed, falling back to logged out", "error", err.Error())
		return sess
	}
	sess.AdminLoggedIn = found && flag == "true"

	return sess
}

// GetCatalog returns a copy of the current project list, newest first.
func (s *StateService) GetCatalog() []catalog.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]catalog.Project, len(s.projects))
	copy(projects, s.projects)
	return projects
}

// GetProject looks up a project by id.
func (s *StateService) GetProject(id string) (catalog.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Project{}, false
}

// GetLeads returns a copy of the lead log, newest first.
func (s *StateService) GetLeads() []leads.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	leadLog := make([]leads.Lead, len(s.leadLog))
	copy(leadLog, s.leadLog)
	return leadLog
}

// GetSessionState returns the current session record.
func (s *StateService) GetSessionState() session.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

// CommitCatalog persists a full replacement project list and, on success,
// adopts it as the working catalog.
func (s *StateService) CommitCatalog(projects []catalog.Project) error {
	value, err := json.Marshal(projects)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(store.KeyCatalog, string(value)); err != nil {
		s.logger.Catalog().Error("Catalog commit failed, keeping previous state", "error", err.Error())
		return err
	}
	s.projects = projects
	return nil
}

// CommitCapture persists a full replacement lead log together with the
// unlock token minted for it. The two writes belong to one capture event: if
// the token write fails the lead write is undone, so a visitor is never left
// captured but locked.
func (s *StateService) CommitCapture(leadLog []leads.Lead, token string) error {
	value, err := json.Marshal(leadLog)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previousLeads, hadLeads, err := s.store.Get(store.KeyLeads)
	if err != nil {
		return err
	}

	if err := s.store.Set(store.KeyLeads, string(value)); err != nil {
		s.logger.Leads().Error("Lead commit failed, keeping previous state", "error", err.Error())
		return err
	}

	if err := s.store.Set(store.KeyUnlockToken, token); err != nil {
		s.logger.Session().Error("Unlock token commit failed, undoing lead write", "error", err.Error())
		if hadLeads {
			if undoErr := s.store.Set(store.KeyLeads, previousLeads); undoErr != nil {
				s.logger.Leads().Error("Lead undo failed", "error", undoErr.Error())
			}
		} else {
			if undoErr := s.store.Delete(store.KeyLeads); undoErr != nil {
				s.logger.Leads().Error("Lead undo failed", "error", undoErr.Error())
			}
		}
		return err
	}

	s.leadLog = leadLog
	s.sess.Unlocked = true
	s.sess.UnlockToken = token
	return nil
}

// CommitAdminFlag persists the operator login status. Setting the current
// value again is a no-op at the state level and always succeeds.
func (s *StateService) CommitAdminFlag(loggedIn bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if loggedIn {
		if err := s.store.Set(store.KeyAdminFlag, "true"); err != nil {
			return err
		}
	} else {
		if err := s.store.Delete(store.KeyAdminFlag); err != nil {
			return err
		}
	}
	s.sess.AdminLoggedIn = loggedIn
	return nil
}

// Reset clears every persisted entry and restores factory state: seed
// catalog, empty lead log, locked session. The deletes are independent, so a
// partial failure still leaves a state the next Initialize converges from.
func (s *StateService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Clear(store.KeyCatalog, store.KeyLeads, store.KeyUnlockToken, store.KeyAdminFlag)
	if err != nil {
		return err
	}

	s.projects = catalog.Seed()
	s.leadLog = []leads.Lead{}
	s.sess = session.Locked()

	s.logger.System().Info("Demo state reset to factory defaults")
	return nil
}
