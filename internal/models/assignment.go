package models

import "time"

// WorkAssignment is a job ticket: one vehicle in the shop, the person
// responsible for it, and the list of work items to perform on it.
// Children have no lifecycle of their own; the parent owns them.
type WorkAssignment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"index" json:"date"`
	VIN         *string   `gorm:"column:vin;size:255" json:"vin"`
	CarNumber   *string   `gorm:"size:255" json:"car_number"`
	ColorID     uint      `json:"color_id"`
	PersonID    uint      `json:"person_id"`
	CarID       *uint     `json:"car_id"`
	IsActive    bool      `json:"is_active"`
	Description *string   `gorm:"size:2000" json:"description"`

	Color  Color                `gorm:"foreignKey:ColorID" json:"color"`
	Person Person               `gorm:"foreignKey:PersonID" json:"person"`
	Car    *Car                 `gorm:"foreignKey:CarID" json:"car"`
	Works  []WorkAssignmentWork `gorm:"foreignKey:WorkAssignmentID" json:"work_assignment_works"`
}

// WorkAssignmentWork is one unit of work within an assignment, with its own
// executor and completion flag.
type WorkAssignmentWork struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	WorkAssignmentID uint `gorm:"index" json:"work_assignment_id"`
	WorkID           uint `gorm:"index" json:"work_id"`
	ExecutorID       uint `gorm:"index" json:"executor_id"`
	Status           bool `gorm:"default:false" json:"status"`

	Work     Work   `gorm:"foreignKey:WorkID" json:"work"`
	Executor Person `gorm:"foreignKey:ExecutorID" json:"executor"`
}
