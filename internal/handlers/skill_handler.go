package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/services"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	skills := rg.Group("/skills")
	{
		skills.GET("", h.ListSkills)
		skills.GET("/category/:category", h.GetSkillsByCategory)
	}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.ListSkills()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// GetSkillsByCategory matches the category exactly. An unknown category is
// not an error, just an empty list.
func (h *SkillHandler) GetSkillsByCategory(c *gin.Context) {
	skills, err := h.skillService.GetSkillsByCategory(c.Param("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}
