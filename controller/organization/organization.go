package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/services"
)

func OrganizationController(api *gin.RouterGroup, orgs *services.OrganizationService) {
	routes := api.Group("/organizations")
	{
		routes.GET("", func(c *gin.Context) {
			ListOrganizations(c, orgs)
		})
		routes.POST("", func(c *gin.Context) {
			CreateOrganization(c, orgs)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetOrganization(c, orgs)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateOrganization(c, orgs)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateOrganization(c, orgs)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteOrganization(c, orgs)
		})
	}
}

func ListOrganizations(c *gin.Context, orgs *services.OrganizationService) {
	list, err := orgs.List(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateOrganization(c *gin.Context, orgs *services.OrganizationService) {
	var req dto.CreateOrganizationRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	org, err := orgs.Create(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

func GetOrganization(c *gin.Context, orgs *services.OrganizationService) {
	org, err := orgs.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

func UpdateOrganization(c *gin.Context, orgs *services.OrganizationService) {
	var req dto.UpdateOrganizationRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	org, err := orgs.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

func DeleteOrganization(c *gin.Context, orgs *services.OrganizationService) {
	if err := orgs.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Deleted(c, "Organization")
}
