package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/services"
)

func ProjectController(api *gin.RouterGroup, projects *services.ProjectService) {
	routes := api.Group("/projects")
	{
		routes.GET("", func(c *gin.Context) {
			ListProjects(c, projects)
		})
		routes.POST("", func(c *gin.Context) {
			CreateProject(c, projects)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetProject(c, projects)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateProject(c, projects)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateProject(c, projects)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteProject(c, projects)
		})
	}
}

func ListProjects(c *gin.Context, projects *services.ProjectService) {
	list, err := projects.List(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateProject(c *gin.Context, projects *services.ProjectService) {
	var req dto.CreateProjectRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	project, err := projects.Create(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func GetProject(c *gin.Context, projects *services.ProjectService) {
	project, err := projects.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func UpdateProject(c *gin.Context, projects *services.ProjectService) {
	var req dto.UpdateProjectRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	project, err := projects.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func DeleteProject(c *gin.Context, projects *services.ProjectService) {
	if err := projects.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Deleted(c, "Project")
}
