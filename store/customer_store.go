package store

import (
	"errors"
	"fmt"

	"customer-records-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerStore is the Postgres-backed implementation. Member-number
// uniqueness is enforced by the unique index, so the check and the write
// cannot be interleaved by concurrent requests.
type GormCustomerStore struct {
	DB *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *GormCustomerStore {
	return &GormCustomerStore{DB: db}
}

// ListAll returns every customer ordered by member number, highest first.
func (s *GormCustomerStore) ListAll() ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.DB.Order("member_number DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *GormCustomerStore) GetByID(id string) (*models.Customer, error) {
	customerUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var customer models.Customer
	if err := s.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

func (s *GormCustomerStore) Create(customer *models.Customer) (*models.Customer, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	if err := s.DB.Create(customer).Error; err != nil {
		return nil, translateError(err)
	}
	return customer, nil
}

// UpdateByID replaces all business fields of the customer at id.
func (s *GormCustomerStore) UpdateByID(id string, in *models.Customer) (*models.Customer, error) {
	customerUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if err := validateCustomer(in); err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := s.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		return nil, translateError(err)
	}

	customer.Name = in.Name
	customer.DateOfBirth = in.DateOfBirth
	customer.MemberNumber = in.MemberNumber
	customer.Interests = in.Interests

	if err := s.DB.Save(&customer).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

func (s *GormCustomerStore) DeleteByID(id string) error {
	customerUUID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	result := s.DB.Delete(&models.Customer{}, "id = ?", customerUUID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func validateCustomer(c *models.Customer) error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: name", ErrMissingField)
	case c.DateOfBirth.IsZero():
		return fmt.Errorf("%w: dateOfBirth", ErrMissingField)
	case c.Interests == "":
		return fmt.Errorf("%w: interests", ErrMissingField)
	}
	return nil
}

// translateError maps gorm errors to the store's taxonomy. The gorm
// connection is opened with TranslateError, so a unique-index violation
// arrives as gorm.ErrDuplicatedKey.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateMemberNumber
	}
	return err
}
