package catalog

import (
	"errors"
	"fmt"

	"github.com/zulandar/pitstop/internal/models"
	"gorm.io/gorm"
)

// defaultPersonLimit caps person listings when the caller supplies no limit.
const defaultPersonLimit = 100

// CreatePersonOpts holds parameters for creating a staff member.
type CreatePersonOpts struct {
	FullName string
	Login    string
	Password string
	Age      int
	RoleID   uint
	IsActive bool
}

// ListPersons returns persons with offset/limit pagination. A non-positive
// limit falls back to the default of 100.
func ListPersons(db *gorm.DB, skip, limit int) ([]models.Person, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPersonLimit
	}
	var persons []models.Person
	if err := db.Offset(skip).Limit(limit).Find(&persons).Error; err != nil {
		return nil, fmt.Errorf("catalog: list persons: %w", err)
	}
	return persons, nil
}

// ListActivePersons returns persons with is_active = true.
func ListActivePersons(db *gorm.DB) ([]models.Person, error) {
	var persons []models.Person
	if err := db.Where("is_active = ?", true).Find(&persons).Error; err != nil {
		return nil, fmt.Errorf("catalog: list active persons: %w", err)
	}
	return persons, nil
}

// GetPerson retrieves a person by ID.
func GetPerson(db *gorm.DB, id uint) (*models.Person, error) {
	var person models.Person
	if err := db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("catalog: person not found: %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("catalog: get person %d: %w", id, err)
	}
	return &person, nil
}

// CreatePerson inserts a new staff member after checking that the referenced
// role exists. Login uniqueness is enforced by the unique column; a duplicate
// surfaces as a store error, not a modeled conflict.
func CreatePerson(db *gorm.DB, opts CreatePersonOpts) (*models.Person, error) {
	var count int64
	if err := db.Model(&models.Role{}).Where("id = ?", opts.RoleID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("catalog: check role %d: %w", opts.RoleID, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("catalog: role not found: %d: %w", opts.RoleID, gorm.ErrRecordNotFound)
	}

	person := models.Person{
		FullName: opts.FullName,
		Login:    opts.Login,
		Password: opts.Password,
		Age:      opts.Age,
		RoleID:   opts.RoleID,
		IsActive: opts.IsActive,
	}
	if err := db.Create(&person).Error; err != nil {
		return nil, fmt.Errorf("catalog: create person: %w", err)
	}
	return &person, nil
}
