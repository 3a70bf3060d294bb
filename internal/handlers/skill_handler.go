package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaiyan-th/portfolio/internal/responses"
	"github.com/jaiyan-th/portfolio/internal/services"
	"github.com/jaiyan-th/portfolio/pkg/logger"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// GetSkills handles GET /api/skills
func (h *SkillHandler) GetSkills(c *gin.Context) {
	skills, err := h.skillService.GetSkillsByCategory()
	if err != nil {
		logger.WithError(err).Error("Failed to retrieve skills")
		responses.Fail(c, http.StatusInternalServerError, responses.CodeDatabaseError, "Failed to retrieve skills")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"skills": skills}, "Skills retrieved successfully")
}
