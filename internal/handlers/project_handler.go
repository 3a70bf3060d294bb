package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaiyan-th/portfolio/internal/responses"
	"github.com/jaiyan-th/portfolio/internal/services"
	"github.com/jaiyan-th/portfolio/pkg/logger"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// GetProjects handles GET /api/projects
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.GetAllProjects()
	if err != nil {
		logger.WithError(err).Error("Failed to retrieve projects")
		responses.Fail(c, http.StatusInternalServerError, responses.CodeDatabaseError, "Failed to retrieve projects")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"projects": projects}, "Projects retrieved successfully")
}

// GetFeaturedProjects handles GET /api/projects/featured
func (h *ProjectHandler) GetFeaturedProjects(c *gin.Context) {
	projects, err := h.projectService.GetFeaturedProjects()
	if err != nil {
		logger.WithError(err).Error("Failed to retrieve featured projects")
		responses.Fail(c, http.StatusInternalServerError, responses.CodeDatabaseError, "Failed to retrieve featured projects")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"projects": projects}, "Featured projects retrieved successfully")
}
