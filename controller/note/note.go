package note

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/services"
)

func NoteController(api *gin.RouterGroup, notes *services.NoteService) {
	routes := api.Group("/notes")
	{
		routes.GET("", func(c *gin.Context) {
			ListNotes(c, notes)
		})
		routes.POST("", func(c *gin.Context) {
			CreateNote(c, notes)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetNote(c, notes)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateNote(c, notes)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateNote(c, notes)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteNote(c, notes)
		})
	}
}

func ListNotes(c *gin.Context, notes *services.NoteService) {
	list, err := notes.List(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateNote(c *gin.Context, notes *services.NoteService) {
	var req dto.CreateNoteRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	note, err := notes.Create(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func GetNote(c *gin.Context, notes *services.NoteService) {
	note, err := notes.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func UpdateNote(c *gin.Context, notes *services.NoteService) {
	var req dto.UpdateNoteRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	note, err := notes.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context, notes *services.NoteService) {
	if err := notes.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Deleted(c, "Note")
}
