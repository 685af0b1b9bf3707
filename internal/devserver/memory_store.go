package devserver

import (
	"sort"
	"strings"
	"sync"

	"logistica/pkg/metadata"
	"logistica/pkg/models"

	"github.com/google/uuid"
)

// MemoryStore keeps every record in process memory. It implements all the
// repositories of the development backend.
type MemoryStore struct {
	mu        sync.RWMutex
	accounts  []*Account
	sites     []Site
	products  []models.Product
	movements []*models.Movement
	evidence  map[models.ID][]Evidence
	newID     func() models.ID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		evidence: make(map[models.ID][]Evidence),
		newID:    func() models.ID { return models.ID(uuid.NewString()) },
	}
}

func (s *MemoryStore) PersistUser(req models.RegisterUserRequest, passwordHash []byte) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, req.Email) {
			return nil, ErrDuplicate
		}
	}

	account := &Account{
		User: models.User{
			ID:      s.newID(),
			Name:    req.Name,
			Profile: req.Profile,
			Status:  models.UserActive,
		},
		Email:        req.Email,
		Document:     req.Document,
		FullAddress:  req.FullAddress,
		PasswordHash: passwordHash,
	}
	s.accounts = append(s.accounts, account)

	user := account.User
	return &user, nil
}

func (s *MemoryStore) FindByEmail(email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			account := *a
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.accounts))
	for _, a := range s.accounts {
		users = append(users, a.User)
	}
	return users, nil
}

func (s *MemoryStore) ToggleStatus(id models.ID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.ID == id {
			a.User = a.User.Toggled()
			user := a.User
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Product{}, s.products...), nil
}

func (s *MemoryStore) GetProduct(id models.ID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetBranches() ([]models.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	branches := make([]models.Branch, 0, len(s.sites))
	for _, site := range s.sites {
		branches = append(branches, site.Branch)
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

func (s *MemoryStore) GetSite(id models.ID) (*Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, site := range s.sites {
		if site.ID == id {
			found := site
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetMovements() ([]models.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movements := make([]models.Movement, 0, len(s.movements))
	for _, m := range s.movements {
		movements = append(movements, *m)
	}
	return movements, nil
}

func (s *MemoryStore) PersistMovement(m models.Movement) (*models.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.newID()
	m.Status = metadata.StatusCreated
	stored := m
	s.movements = append(s.movements, &stored)
	return &m, nil
}

func (s *MemoryStore) TransitionMovement(id models.ID, t metadata.Transition, evidence Evidence) (*models.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movements {
		if m.ID != id {
			continue
		}

		next, err := m.Status.Apply(t)
		if err != nil {
			return nil, err
		}

		m.Status = next
		if evidence.Motorista != "" {
			m.Motorista = evidence.Motorista
		}
		s.evidence[id] = append(s.evidence[id], evidence)

		updated := *m
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetEvidence(id models.ID) ([]Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Evidence(nil), s.evidence[id]...), nil
}
