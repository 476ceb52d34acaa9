package pomodoro

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/services"
)

func PomodoroController(api *gin.RouterGroup, sessions *services.PomodoroService) {
	routes := api.Group("/pomodoro")
	{
		routes.GET("", func(c *gin.Context) {
			ListPomodoroSessions(c, sessions)
		})
		routes.POST("", func(c *gin.Context) {
			CreatePomodoroSession(c, sessions)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetPomodoroSession(c, sessions)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdatePomodoroSession(c, sessions)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdatePomodoroSession(c, sessions)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeletePomodoroSession(c, sessions)
		})
		routes.GET("/stats", func(c *gin.Context) {
			PomodoroStats(c, sessions)
		})
	}
}

func ListPomodoroSessions(c *gin.Context, sessions *services.PomodoroService) {
	list, err := sessions.List(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreatePomodoroSession(c *gin.Context, sessions *services.PomodoroService) {
	var req dto.CreatePomodoroRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	session, err := sessions.Create(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func GetPomodoroSession(c *gin.Context, sessions *services.PomodoroService) {
	session, err := sessions.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func UpdatePomodoroSession(c *gin.Context, sessions *services.PomodoroService) {
	var req dto.UpdatePomodoroRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	session, err := sessions.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func DeletePomodoroSession(c *gin.Context, sessions *services.PomodoroService) {
	if err := sessions.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Deleted(c, "Pomodoro session")
}

func PomodoroStats(c *gin.Context, sessions *services.PomodoroService) {
	stats, err := sessions.Stats(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
