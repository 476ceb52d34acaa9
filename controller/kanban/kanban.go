package kanban

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/services"
)

func KanbanController(api *gin.RouterGroup, kanban *services.KanbanService) {
	routes := api.Group("/kanban/columns")
	{
		routes.GET("", func(c *gin.Context) {
			ListColumns(c, kanban)
		})
		routes.POST("", func(c *gin.Context) {
			CreateColumn(c, kanban)
		})
		routes.PUT("/reorder", func(c *gin.Context) {
			ReorderColumns(c, kanban)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetColumn(c, kanban)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateColumn(c, kanban)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateColumn(c, kanban)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteColumn(c, kanban)
		})
	}
}

func ListColumns(c *gin.Context, kanban *services.KanbanService) {
	cols, err := kanban.List(c.Request.Context(), c.GetString("userId"), c.Query("projectId"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cols)
}

func CreateColumn(c *gin.Context, kanban *services.KanbanService) {
	var req dto.CreateColumnRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	col, err := kanban.Create(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

func GetColumn(c *gin.Context, kanban *services.KanbanService) {
	col, err := kanban.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

func UpdateColumn(c *gin.Context, kanban *services.KanbanService) {
	var req dto.UpdateColumnRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	col, err := kanban.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

func DeleteColumn(c *gin.Context, kanban *services.KanbanService) {
	if err := kanban.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Deleted(c, "Column")
}

func ReorderColumns(c *gin.Context, kanban *services.KanbanService) {
	var req dto.ReorderColumnsRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	cols, err := kanban.Reorder(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cols)
}
