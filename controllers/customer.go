// controllers/customer.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"customer-records-backend/models"
	"customer-records-backend/store"
	"customer-records-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name         string      `json:"name" binding:"required"`
	DateOfBirth  models.Date `json:"dateOfBirth" binding:"required"`
	MemberNumber *int        `json:"memberNumber" binding:"required"`
	Interests    string      `json:"interests" binding:"required"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a
// customer. The target is addressed by the _id field of the body, and all
// business fields are replaced, so every field is required.
type UpdateCustomerInput struct {
	ID           string      `json:"_id" binding:"required"`
	Name         string      `json:"name" binding:"required"`
	DateOfBirth  models.Date `json:"dateOfBirth" binding:"required"`
	MemberNumber *int        `json:"memberNumber" binding:"required"`
	Interests    string      `json:"interests" binding:"required"`
}

type CustomerController struct {
	Store store.CustomerStore
}

// GetCustomers retrieves all customers, ordered by member number descending
func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctl.Store.ListAll()
	if err != nil {
		log.Println("Failed to fetch customers:", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	customer, err := ctl.Store.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
			return
		}
		log.Println("Failed to fetch customer:", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer creates a new customer
func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := models.Customer{
		Name:         input.Name,
		DateOfBirth:  input.DateOfBirth,
		MemberNumber: *input.MemberNumber,
		Interests:    input.Interests,
	}

	created, err := ctl.Store.Create(&customer)
	if err != nil {
		ctl.respondWriteError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateCustomer replaces all business fields of an existing customer
func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := uuid.Parse(input.ID); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer := models.Customer{
		Name:         input.Name,
		DateOfBirth:  input.DateOfBirth,
		MemberNumber: *input.MemberNumber,
		Interests:    input.Interests,
	}

	updated, err := ctl.Store.UpdateByID(input.ID, &customer)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
			return
		}
		ctl.respondWriteError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCustomer permanently removes a customer
func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	if err := ctl.Store.DeleteByID(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
			return
		}
		log.Println("Failed to delete customer:", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// respondWriteError maps store write failures to status codes: missing
// fields are the caller's fault, duplicates are conflicts, anything else
// stays server-side with only a generic message going out.
func (ctl *CustomerController) respondWriteError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, store.ErrMissingField):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
	case errors.Is(err, store.ErrDuplicateMemberNumber):
		utils.RespondWithError(c, http.StatusConflict, "Customer with this member number already exists")
	default:
		log.Println(generic+":", err)
		utils.RespondWithError(c, http.StatusInternalServerError, generic)
	}
}
