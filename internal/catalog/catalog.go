// Package catalog provides reference-data operations: roles, cars, colors,
// works, and persons. These entities carry no business logic beyond
// list/create; only person creation performs a cross-entity check.
package catalog

import (
	"errors"
	"fmt"

	"github.com/zulandar/pitstop/internal/models"
	"gorm.io/gorm"
)

// ListRoles returns all roles.
func ListRoles(db *gorm.DB) ([]models.Role, error) {
	var roles []models.Role
	if err := db.Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("catalog: list roles: %w", err)
	}
	return roles, nil
}

// GetRole retrieves a role by ID.
func GetRole(db *gorm.DB, id uint) (*models.Role, error) {
	var role models.Role
	if err := db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("catalog: role not found: %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("catalog: get role %d: %w", id, err)
	}
	return &role, nil
}

// CreateRole inserts a new role.
func CreateRole(db *gorm.DB, ident, name string, active bool) (*models.Role, error) {
	role := models.Role{Ident: ident, Name: name, IsActive: active}
	if err := db.Create(&role).Error; err != nil {
		return nil, fmt.Errorf("catalog: create role: %w", err)
	}
	return &role, nil
}

// ListCars returns all car catalog entries.
func ListCars(db *gorm.DB) ([]models.Car, error) {
	var cars []models.Car
	if err := db.Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("catalog: list cars: %w", err)
	}
	return cars, nil
}

// CreateCar inserts a new car catalog entry. Cars have no foreign keys, so no
// cross-entity validation applies.
func CreateCar(db *gorm.DB, name string, active bool) (*models.Car, error) {
	car := models.Car{Name: name, IsActive: active}
	if err := db.Create(&car).Error; err != nil {
		return nil, fmt.Errorf("catalog: create car: %w", err)
	}
	return &car, nil
}

// ListColors returns all colors.
func ListColors(db *gorm.DB) ([]models.Color, error) {
	var colors []models.Color
	if err := db.Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("catalog: list colors: %w", err)
	}
	return colors, nil
}

// CreateColor inserts a new color.
func CreateColor(db *gorm.DB, name string, active bool) (*models.Color, error) {
	color := models.Color{Name: name, IsActive: active}
	if err := db.Create(&color).Error; err != nil {
		return nil, fmt.Errorf("catalog: create color: %w", err)
	}
	return &color, nil
}

// ListWorks returns all work-type catalog entries.
func ListWorks(db *gorm.DB) ([]models.Work, error) {
	var works []models.Work
	if err := db.Find(&works).Error; err != nil {
		return nil, fmt.Errorf("catalog: list works: %w", err)
	}
	return works, nil
}

// CreateWork inserts a new work type.
func CreateWork(db *gorm.DB, ident, name, description string, active bool) (*models.Work, error) {
	work := models.Work{Ident: ident, Name: name, Description: description, IsActive: active}
	if err := db.Create(&work).Error; err != nil {
		return nil, fmt.Errorf("catalog: create work: %w", err)
	}
	return &work, nil
}
