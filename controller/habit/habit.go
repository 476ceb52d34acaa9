package habit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/services"
)

func HabitController(api *gin.RouterGroup, habits *services.HabitService) {
	routes := api.Group("/habits")
	{
		routes.GET("", func(c *gin.Context) {
			ListHabits(c, habits)
		})
		routes.POST("", func(c *gin.Context) {
			CreateHabit(c, habits)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetHabit(c, habits)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateHabit(c, habits)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateHabit(c, habits)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteHabit(c, habits)
		})
		routes.GET("/:id/entries", func(c *gin.Context) {
			ListHabitEntries(c, habits)
		})
		routes.POST("/:id/entries", func(c *gin.Context) {
			RecordHabitEntry(c, habits)
		})
	}
}

func ListHabits(c *gin.Context, habits *services.HabitService) {
	list, err := habits.List(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateHabit(c *gin.Context, habits *services.HabitService) {
	var req dto.CreateHabitRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	habit, err := habits.Create(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

func GetHabit(c *gin.Context, habits *services.HabitService) {
	habit, err := habits.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

func UpdateHabit(c *gin.Context, habits *services.HabitService) {
	var req dto.UpdateHabitRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	habit, err := habits.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

func DeleteHabit(c *gin.Context, habits *services.HabitService) {
	if err := habits.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Deleted(c, "Habit")
}

func ListHabitEntries(c *gin.Context, habits *services.HabitService) {
	var r dto.HabitEntryRange
	if !respond.BindQuery(c, &r) {
		return
	}
	entries, err := habits.ListEntries(c.Request.Context(), c.GetString("userId"), c.Param("id"), r)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func RecordHabitEntry(c *gin.Context, habits *services.HabitService) {
	var req dto.HabitEntryRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	entry, err := habits.RecordEntry(c.Request.Context(), c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
