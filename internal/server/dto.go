package server

import (
	"fmt"
	"time"

	"github.com/zulandar/pitstop/internal/assignment"
	"github.com/zulandar/pitstop/internal/models"
)

// dateLayout matches the ISO-8601 timestamps consumers send and expect back.
const dateLayout = "2006-01-02T15:04:05"

// parseDate accepts the timestamp shapes consumers actually send: full
// RFC 3339, a zone-less timestamp, or a bare date.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, dateLayout, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

type workItemInput struct {
	WorkID     uint `json:"work_id"`
	ExecutorID uint `json:"executor_id"`
	Status     bool `json:"status"`
}

// assignmentInput is the write payload for creating or updating an
// assignment. IsActive is accepted but ignored by both paths; the server owns
// that flag.
type assignmentInput struct {
	Date        string          `json:"date" binding:"required"`
	VIN         *string         `json:"vin"`
	CarNumber   *string         `json:"car_number"`
	ColorID     uint            `json:"color_id" binding:"required"`
	PersonID    uint            `json:"person_id" binding:"required"`
	CarID       *uint           `json:"car_id"`
	IsActive    *bool           `json:"is_active"`
	Description *string         `json:"description"`
	Works       []workItemInput `json:"works"`
}

func (in assignmentInput) toOpts() (assignment.Opts, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return assignment.Opts{}, err
	}
	opts := assignment.Opts{
		Date:        date,
		VIN:         in.VIN,
		CarNumber:   in.CarNumber,
		ColorID:     in.ColorID,
		PersonID:    in.PersonID,
		CarID:       in.CarID,
		Description: in.Description,
	}
	for _, w := range in.Works {
		opts.Works = append(opts.Works, assignment.WorkItem{
			WorkID:     w.WorkID,
			ExecutorID: w.ExecutorID,
			Status:     w.Status,
		})
	}
	return opts, nil
}

type workItemState struct {
	WorkID     uint `json:"work_id"`
	ExecutorID uint `json:"executor_id"`
	Status     bool `json:"status"`
}

// assignmentWriteResponse is the echo shape of assignment create and update.
// It carries the persisted item states, not the caller-supplied ones, so the
// create path's forced status=false is visible to the consumer.
type assignmentWriteResponse struct {
	ID        uint            `json:"id"`
	Date      string          `json:"date"`
	VIN       *string         `json:"vin"`
	CarNumber *string         `json:"car_number"`
	ColorID   uint            `json:"color_id"`
	PersonID  uint            `json:"person_id"`
	CarID     *uint           `json:"car_id"`
	Works     []workItemState `json:"works"`
	Success   bool            `json:"success"`
}

func newWriteResponse(a *models.WorkAssignment) assignmentWriteResponse {
	resp := assignmentWriteResponse{
		ID:        a.ID,
		Date:      a.Date.Format(dateLayout),
		VIN:       a.VIN,
		CarNumber: a.CarNumber,
		ColorID:   a.ColorID,
		PersonID:  a.PersonID,
		CarID:     a.CarID,
		Works:     []workItemState{},
		Success:   true,
	}
	for _, w := range a.Works {
		resp.Works = append(resp.Works, workItemState{
			WorkID:     w.WorkID,
			ExecutorID: w.ExecutorID,
			Status:     w.Status,
		})
	}
	return resp
}

type personInput struct {
	FullName string `json:"full_name" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Age      int    `json:"age"`
	RoleID   uint   `json:"role_id" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type roleInput struct {
	Ident    string `json:"ident" binding:"required"`
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type carInput struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type colorInput struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type workInput struct {
	Ident       string `json:"ident" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type workItemCreateInput struct {
	WorkAssignmentID uint `json:"work_assignment_id" binding:"required"`
	WorkID           uint `json:"work_id" binding:"required"`
	ExecutorID       uint `json:"executor_id" binding:"required"`
	Status           bool `json:"status"`
}

type statusUpdateInput struct {
	AssignmentID uint              `json:"assignment_id" binding:"required"`
	Updates      []statusItemInput `json:"updates" binding:"required"`
}

type statusItemInput struct {
	WorkID uint `json:"work_id"`
	Status bool `json:"status"`
}

// activeOrDefault returns the flag value, defaulting absent to true.
func activeOrDefault(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}
