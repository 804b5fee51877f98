package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// registerRoutes sets up all API routes. Paths are consumer-visible contract;
// the /get-assignment oddity and the trailing slash on update-status stay.
func registerRoutes(router *gin.Engine, opts StartOpts) {
	router.GET("/health", handleHealth(opts.DB))

	// Staff.
	router.GET("/persons", handleListPersons(opts))
	router.GET("/persons-status", handleListActivePersons(opts))
	router.POST("/persons", handleCreatePerson(opts))

	// Reference data.
	router.GET("/roles", handleListRoles(opts))
	router.POST("/roles", handleCreateRole(opts))
	router.GET("/cars", handleListCars(opts))
	router.POST("/cars", handleCreateCar(opts))
	router.GET("/colors", handleListColors(opts))
	router.POST("/colors", handleCreateColor(opts))
	router.GET("/works", handleListWorks(opts))
	router.POST("/works", handleCreateWork(opts))

	// Assignments.
	router.GET("/work-assignments", handleListAssignments(opts))
	router.GET("/get-assignment/:id", handleGetAssignment(opts))
	router.POST("/work-assignments", handleCreateAssignment(opts))
	router.PUT("/work-assignments/:id", handleUpdateAssignment(opts))
	router.DELETE("/work-assignments/:id", handleDeleteAssignment(opts))

	// Work items.
	router.GET("/work-assignment-works", handleListWorkItems(opts))
	router.POST("/work-assignment-works", handleCreateWorkItem(opts))
	router.POST("/work-assignment-works/update-status/", handleUpdateStatuses(opts))
}

func handleHealth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// respondError maps a domain error to an HTTP response. Missing rows become
// 404 with the error text as detail; anything else is logged and hidden
// behind a generic 500 so storage internals never leak to clients.
func respondError(c *gin.Context, opts StartOpts, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}
	if opts.Log != nil {
		opts.Log.Errorw("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}
