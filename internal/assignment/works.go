package assignment

import (
	"errors"
	"fmt"

	"github.com/zulandar/pitstop/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusUpdate marks one work item of an assignment as done or not done.
type StatusUpdate struct {
	WorkID uint
	Status bool
}

// CreateItemOpts holds parameters for creating a single work item outside the
// aggregate write path.
type CreateItemOpts struct {
	WorkAssignmentID uint
	WorkID           uint
	ExecutorID       uint
	Status           bool
}

// UpdateStatuses overwrites the status of each child matched by
// (assignment_id, work_id). Pairs matching no existing row are silently
// skipped; rows not named in updates are untouched. One transaction for the
// whole batch.
func UpdateStatuses(db *gorm.DB, assignmentID uint, updates []StatusUpdate) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			err := tx.Model(&models.WorkAssignmentWork{}).
				Where("work_assignment_id = ? AND work_id = ?", assignmentID, u.WorkID).
				Update("status", u.Status).Error
			if err != nil {
				return fmt.Errorf("assignment: update status of work %d in %d: %w", u.WorkID, assignmentID, err)
			}
		}
		return nil
	})
}

// AllDone reports whether the assignment has at least one work item and every
// one of them is completed.
func AllDone(db *gorm.DB, assignmentID uint) (bool, error) {
	var total, open int64
	if err := db.Model(&models.WorkAssignmentWork{}).
		Where("work_assignment_id = ?", assignmentID).
		Count(&total).Error; err != nil {
		return false, fmt.Errorf("assignment: count work items of %d: %w", assignmentID, err)
	}
	if err := db.Model(&models.WorkAssignmentWork{}).
		Where("work_assignment_id = ? AND status = ?", assignmentID, false).
		Count(&open).Error; err != nil {
		return false, fmt.Errorf("assignment: count open work items of %d: %w", assignmentID, err)
	}
	return total > 0 && open == 0, nil
}

// ListItems returns work items with their work type and executor resolved,
// optionally filtered by assignment. Zero means no filter.
func ListItems(db *gorm.DB, assignmentID uint) ([]models.WorkAssignmentWork, error) {
	q := db.Preload("Work").Preload("Executor")
	if assignmentID > 0 {
		q = q.Where("work_assignment_id = ?", assignmentID)
	}
	var items []models.WorkAssignmentWork
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("assignment: list work items: %w", err)
	}
	return items, nil
}

// CreateItem inserts one work item after checking that the assignment, the
// work type, and the executor all exist, failing NotFound on any missing
// reference. The returned item has Work and Executor resolved.
func CreateItem(db *gorm.DB, opts CreateItemOpts) (*models.WorkAssignmentWork, error) {
	if err := mustExist(db, &models.WorkAssignment{}, opts.WorkAssignmentID, "work assignment"); err != nil {
		return nil, err
	}
	if err := mustExist(db, &models.Work{}, opts.WorkID, "work"); err != nil {
		return nil, err
	}
	if err := mustExist(db, &models.Person{}, opts.ExecutorID, "executor"); err != nil {
		return nil, err
	}

	item := models.WorkAssignmentWork{
		WorkAssignmentID: opts.WorkAssignmentID,
		WorkID:           opts.WorkID,
		ExecutorID:       opts.ExecutorID,
		Status:           opts.Status,
	}
	if err := db.Omit(clause.Associations).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("assignment: create work item: %w", err)
	}

	if err := db.Preload("Work").Preload("Executor").First(&item, item.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assignment: work item not found after create: %d: %w", item.ID, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("assignment: reload work item %d: %w", item.ID, err)
	}
	return &item, nil
}
