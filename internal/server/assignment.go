package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/pitstop/internal/assignment"
)

func handleListAssignments(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, _ := strconv.Atoi(c.Query("year"))
		month, _ := strconv.Atoi(c.Query("month"))
		day, _ := strconv.Atoi(c.Query("day"))

		list, err := assignment.List(opts.DB, assignment.ListFilter{Year: year, Month: month, Day: day})
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func handleGetAssignment(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		a, err := assignment.Get(opts.DB, id)
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func handleCreateAssignment(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in assignmentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		aOpts, err := in.toOpts()
		if err != nil {
			respondBadRequest(c, err)
			return
		}

		created, err := assignment.Create(opts.DB, aOpts)
		if err != nil {
			respondError(c, opts, err)
			return
		}

		notifyText(c, opts, fmt.Sprintf("New work assignment #%d created for %s.", created.ID, created.Date.Format("2006-01-02")))

		// 200, not 201: long-standing consumer-visible behavior.
		c.JSON(http.StatusOK, newWriteResponse(created))
	}
}

func handleUpdateAssignment(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		var in assignmentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		aOpts, err := in.toOpts()
		if err != nil {
			respondBadRequest(c, err)
			return
		}

		updated, err := assignment.Update(opts.DB, id, aOpts)
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, newWriteResponse(updated))
	}
}

func handleDeleteAssignment(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		if err := assignment.Delete(opts.DB, id); err != nil {
			respondError(c, opts, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleListWorkItems(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		assignmentID, _ := strconv.Atoi(c.Query("work_assignment_id"))
		items, err := assignment.ListItems(opts.DB, uint(assignmentID))
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func handleCreateWorkItem(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in workItemCreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		item, err := assignment.CreateItem(opts.DB, assignment.CreateItemOpts{
			WorkAssignmentID: in.WorkAssignmentID,
			WorkID:           in.WorkID,
			ExecutorID:       in.ExecutorID,
			Status:           in.Status,
		})
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func handleUpdateStatuses(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in statusUpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}

		updates := make([]assignment.StatusUpdate, 0, len(in.Updates))
		for _, u := range in.Updates {
			updates = append(updates, assignment.StatusUpdate{WorkID: u.WorkID, Status: u.Status})
		}

		if err := assignment.UpdateStatuses(opts.DB, in.AssignmentID, updates); err != nil {
			// Status vs. the usual 500: this endpoint has always reported
			// failures as 400.
			respondBadRequest(c, err)
			return
		}

		done, err := assignment.AllDone(opts.DB, in.AssignmentID)
		if err == nil && done {
			notifyText(c, opts, fmt.Sprintf("Work assignment #%d: all works completed.", in.AssignmentID))
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// notifyText posts a chat notification when a notifier is configured.
// Best effort: failures are logged and swallowed.
func notifyText(c *gin.Context, opts StartOpts, text string) {
	if opts.Notifier == nil {
		return
	}
	if err := opts.Notifier.Post(c.Request.Context(), text); err != nil && opts.Log != nil {
		opts.Log.Warnw("notification failed", "error", err)
	}
}

// parseID parses a positive numeric path parameter.
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
