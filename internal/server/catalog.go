package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/pitstop/internal/catalog"
)

func handleListPersons(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
		persons, err := catalog.ListPersons(opts.DB, skip, limit)
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, persons)
	}
}

func handleListActivePersons(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		persons, err := catalog.ListActivePersons(opts.DB)
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, persons)
	}
}

func handleCreatePerson(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in personInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		person, err := catalog.CreatePerson(opts.DB, catalog.CreatePersonOpts{
			FullName: in.FullName,
			Login:    in.Login,
			Password: in.Password,
			Age:      in.Age,
			RoleID:   in.RoleID,
			IsActive: activeOrDefault(in.IsActive),
		})
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusCreated, person)
	}
}

func handleListRoles(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, err := catalog.ListRoles(opts.DB)
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, roles)
	}
}

func handleCreateRole(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in roleInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		role, err := catalog.CreateRole(opts.DB, in.Ident, in.Name, activeOrDefault(in.IsActive))
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusCreated, role)
	}
}

func handleListCars(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		cars, err := catalog.ListCars(opts.DB)
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, cars)
	}
}

func handleCreateCar(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in carInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		car, err := catalog.CreateCar(opts.DB, in.Name, activeOrDefault(in.IsActive))
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusCreated, car)
	}
}

func handleListColors(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		colors, err := catalog.ListColors(opts.DB)
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, colors)
	}
}

func handleCreateColor(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in colorInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		color, err := catalog.CreateColor(opts.DB, in.Name, activeOrDefault(in.IsActive))
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusCreated, color)
	}
}

func handleListWorks(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		works, err := catalog.ListWorks(opts.DB)
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusOK, works)
	}
}

func handleCreateWork(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in workInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		work, err := catalog.CreateWork(opts.DB, in.Ident, in.Name, in.Description, activeOrDefault(in.IsActive))
		if err != nil {
			respondError(c, opts, err)
			return
		}
		c.JSON(http.StatusCreated, work)
	}
}
