// Package assignment implements the work-assignment aggregate: a parent job
// ticket owning a set of work-item children. Writes to the aggregate are
// transactional; an update replaces the child set wholesale (destructive
// recreate, not a diff), and a delete cascades explicitly from children to
// parent.
package assignment

import (
	"errors"
	"fmt"
	"time"

	"github.com/zulandar/pitstop/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkItem is one requested unit of work within an assignment. Status is
// honored on update only; create always starts items as not done.
type WorkItem struct {
	WorkID     uint
	ExecutorID uint
	Status     bool
}

// Opts holds the mutable fields of an assignment plus its desired work items.
// The same shape serves create and update: both write every field.
type Opts struct {
	Date        time.Time
	VIN         *string
	CarNumber   *string
	ColorID     uint
	PersonID    uint
	CarID       *uint
	Description *string
	Works       []WorkItem
}

// ListFilter holds optional date filters for listing assignments. Filtering
// requires at least year and month; a year alone (or month/day without the
// rest) applies no date filter. That asymmetry is long-standing consumer-
// visible behavior and is kept on purpose.
type ListFilter struct {
	Year  int
	Month int
	Day   int
}

// eager preloads the related entities every read endpoint resolves. GORM
// batches each preload into one query, so the total stays bounded regardless
// of child count.
func eager(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Color").
		Preload("Person").
		Preload("Car").
		Preload("Works.Work").
		Preload("Works.Executor")
}

// Create inserts the parent row and its children as one atomic unit. Children
// always start with status=false regardless of the supplied items. All
// referenced rows are checked up front; a missing reference fails NotFound
// before anything is written.
func Create(db *gorm.DB, opts Opts) (*models.WorkAssignment, error) {
	var created models.WorkAssignment

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := validateRefs(tx, opts); err != nil {
			return err
		}

		created = models.WorkAssignment{
			Date:        opts.Date,
			VIN:         opts.VIN,
			CarNumber:   opts.CarNumber,
			ColorID:     opts.ColorID,
			PersonID:    opts.PersonID,
			CarID:       opts.CarID,
			IsActive:    true,
			Description: opts.Description,
		}
		if err := tx.Omit(clause.Associations).Create(&created).Error; err != nil {
			return fmt.Errorf("assignment: create: %w", err)
		}

		for _, item := range opts.Works {
			child := models.WorkAssignmentWork{
				WorkAssignmentID: created.ID,
				WorkID:           item.WorkID,
				ExecutorID:       item.ExecutorID,
				Status:           false,
			}
			if err := tx.Omit(clause.Associations).Create(&child).Error; err != nil {
				return fmt.Errorf("assignment: create work item %d: %w", item.WorkID, err)
			}
			created.Works = append(created.Works, child)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update overwrites every mutable parent field (a full replace, not a patch),
// discards all existing children unconditionally, and inserts the supplied
// work items in their place. A caller-supplied item status is honored here:
// that is how an executor's "done" mark survives an otherwise full-replace
// update. Atomic; NotFound if the assignment does not exist.
func Update(db *gorm.DB, id uint, opts Opts) (*models.WorkAssignment, error) {
	var updated models.WorkAssignment

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.WorkAssignment
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("assignment: not found: %d: %w", id, gorm.ErrRecordNotFound)
			}
			return fmt.Errorf("assignment: get %d for update: %w", id, err)
		}

		if err := validateRefs(tx, opts); err != nil {
			return err
		}

		// Map-based update so nil pointers write NULL instead of being skipped.
		fields := map[string]interface{}{
			"date":        opts.Date,
			"vin":         opts.VIN,
			"car_number":  opts.CarNumber,
			"car_id":      opts.CarID,
			"color_id":    opts.ColorID,
			"person_id":   opts.PersonID,
			"description": opts.Description,
		}
		if err := tx.Model(&models.WorkAssignment{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return fmt.Errorf("assignment: update %d: %w", id, err)
		}

		if err := tx.Where("work_assignment_id = ?", id).Delete(&models.WorkAssignmentWork{}).Error; err != nil {
			return fmt.Errorf("assignment: clear work items of %d: %w", id, err)
		}

		updated = models.WorkAssignment{
			ID:          id,
			Date:        opts.Date,
			VIN:         opts.VIN,
			CarNumber:   opts.CarNumber,
			ColorID:     opts.ColorID,
			PersonID:    opts.PersonID,
			CarID:       opts.CarID,
			IsActive:    existing.IsActive,
			Description: opts.Description,
		}
		for _, item := range opts.Works {
			child := models.WorkAssignmentWork{
				WorkAssignmentID: id,
				WorkID:           item.WorkID,
				ExecutorID:       item.ExecutorID,
				Status:           item.Status,
			}
			if err := tx.Omit(clause.Associations).Create(&child).Error; err != nil {
				return fmt.Errorf("assignment: recreate work item %d: %w", item.WorkID, err)
			}
			updated.Works = append(updated.Works, child)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the children first, then the parent, in one transaction.
// If the parent row did not exist the whole operation fails NotFound, even
// though the child delete vacuously succeeded.
func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_assignment_id = ?", id).Delete(&models.WorkAssignmentWork{}).Error; err != nil {
			return fmt.Errorf("assignment: delete work items of %d: %w", id, err)
		}
		res := tx.Where("id = ?", id).Delete(&models.WorkAssignment{})
		if res.Error != nil {
			return fmt.Errorf("assignment: delete %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("assignment: not found: %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil
	})
}

// Get fetches one assignment with color, person, car, and each child's work
// type and executor eagerly resolved.
func Get(db *gorm.DB, id uint) (*models.WorkAssignment, error) {
	var a models.WorkAssignment
	if err := eager(db).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assignment: not found: %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("assignment: get %d: %w", id, err)
	}
	return &a, nil
}

// List returns assignments matching the filter, with the same eager loading
// as Get. An empty result is an empty slice, never an error.
func List(db *gorm.DB, f ListFilter) ([]models.WorkAssignment, error) {
	q := eager(db)

	if f.Year > 0 && f.Month > 0 && f.Day > 0 {
		start := time.Date(f.Year, time.Month(f.Month), f.Day, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 1)
		q = q.Where("date >= ? AND date < ?", start, end)
	} else if f.Year > 0 && f.Month > 0 {
		start := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		q = q.Where("date >= ? AND date < ?", start, end)
	}

	var out []models.WorkAssignment
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("assignment: list: %w", err)
	}
	return out, nil
}

// validateRefs checks every row the aggregate is about to reference. Kept at
// the same rigor as the single-item create path.
func validateRefs(tx *gorm.DB, opts Opts) error {
	if err := mustExist(tx, &models.Color{}, opts.ColorID, "color"); err != nil {
		return err
	}
	if err := mustExist(tx, &models.Person{}, opts.PersonID, "person"); err != nil {
		return err
	}
	if opts.CarID != nil {
		if err := mustExist(tx, &models.Car{}, *opts.CarID, "car"); err != nil {
			return err
		}
	}
	for _, item := range opts.Works {
		if err := mustExist(tx, &models.Work{}, item.WorkID, "work"); err != nil {
			return err
		}
		if err := mustExist(tx, &models.Person{}, item.ExecutorID, "executor"); err != nil {
			return err
		}
	}
	return nil
}

// mustExist fails with a wrapped NotFound when the referenced row is absent.
func mustExist(tx *gorm.DB, model interface{}, id uint, what string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("assignment: check %s %d: %w", what, id, err)
	}
	if count == 0 {
		return fmt.Errorf("assignment: %s not found: %d: %w", what, id, gorm.ErrRecordNotFound)
	}
	return nil
}
