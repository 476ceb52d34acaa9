package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/services"
)

func TaskController(api *gin.RouterGroup, tasks *services.TaskService) {
	routes := api.Group("/tasks")
	{
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, tasks)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, tasks)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTask(c, tasks)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, tasks)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateTask(c, tasks)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTask(c, tasks)
		})
	}
}

func ListTasks(c *gin.Context, tasks *services.TaskService) {
	var filter dto.TaskFilter
	if !respond.BindQuery(c, &filter) {
		return
	}
	list, err := tasks.List(c.Request.Context(), c.GetString("userId"), filter)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateTask(c *gin.Context, tasks *services.TaskService) {
	var req dto.CreateTaskRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	task, err := tasks.Create(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func GetTask(c *gin.Context, tasks *services.TaskService) {
	task, err := tasks.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context, tasks *services.TaskService) {
	var req dto.UpdateTaskRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	task, err := tasks.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, tasks *services.TaskService) {
	if err := tasks.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Deleted(c, "Task")
}
