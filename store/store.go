package store

import (
	"errors"

	"customer-records-backend/models"
)

var (
	// ErrNotFound is returned when no customer has the given ID,
	// including IDs that do not parse as UUIDs.
	ErrNotFound = errors.New("customer not found")

	// ErrDuplicateMemberNumber is returned when a write would give two
	// customers the same member number.
	ErrDuplicateMemberNumber = errors.New("member number already in use")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("missing required field")
)

// CustomerStore defines the persistence operations used by the handlers
type CustomerStore interface {
	ListAll() ([]models.Customer, error)
	GetByID(id string) (*models.Customer, error)
	Create(customer *models.Customer) (*models.Customer, error)
	UpdateByID(id string, customer *models.Customer) (*models.Customer, error)
	DeleteByID(id string) error
}
