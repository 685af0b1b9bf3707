package devserver

import (
	"errors"
	"time"

	"logistica/pkg/metadata"
	"logistica/pkg/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Account is a user as the backend keeps it, credentials included.
type Account struct {
	models.User
	Email        string
	Document     string
	FullAddress  string
	PasswordHash []byte
}

// Site is a branch with its coordinates.
type Site struct {
	models.Branch
	Latitude  float64
	Longitude float64
}

// Evidence describes the photo attached to a movement transition.
type Evidence struct {
	Transition  metadata.Transition
	FileName    string
	ContentType string
	Size        int64
	Motorista   string
	ReceivedAt  time.Time
}

type UserRepository interface {
	PersistUser(req models.RegisterUserRequest, passwordHash []byte) (*models.User, error)
	FindByEmail(email string) (*Account, error)
	GetUsers() ([]models.User, error)
	ToggleStatus(id models.ID) (*models.User, error)
}

type CatalogRepository interface {
	GetProducts() ([]models.Product, error)
	GetProduct(id models.ID) (*models.Product, error)
	GetBranches() ([]models.Branch, error)
	GetSite(id models.ID) (*Site, error)
}

type MovementRepository interface {
	GetMovements() ([]models.Movement, error)
	PersistMovement(m models.Movement) (*models.Movement, error)
	// TransitionMovement applies t atomically. It fails with
	// metadata.ErrInvalidTransition when the current status does not allow it.
	TransitionMovement(id models.ID, t metadata.Transition, evidence Evidence) (*models.Movement, error)
	GetEvidence(id models.ID) ([]Evidence, error)
}
