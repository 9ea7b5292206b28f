package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/pkg/apperrors"
)

type MentorHandler struct {
	*BaseHandler
	mentorService services.MentorService
}

func NewMentorHandler(base *BaseHandler, mentorService services.MentorService) *MentorHandler {
	return &MentorHandler{
		BaseHandler:   base,
		mentorService: mentorService,
	}
}

// RegisterRoutes registers the mentor listing and search routes. The static
// /search segment coexists with /:id.
func (h *MentorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	mentors := rg.Group("/mentors")
	{
		mentors.GET("", h.ListMentors)
		mentors.GET("/search", h.SearchMentors)
		mentors.GET("/:id", h.GetMentor)
	}
}

func (h *MentorHandler) ListMentors(c *gin.Context) {
	mentors, err := h.mentorService.ListMentors()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

func (h *MentorHandler) SearchMentors(c *gin.Context) {
	filter, err := parseMentorFilter(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	mentors, err := h.mentorService.SearchMentors(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

func (h *MentorHandler) GetMentor(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	mentor, err := h.mentorService.GetMentor(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

// parseMentorFilter builds the filter from query parameters. Absent
// parameters leave their constraint off; a price that is present but not an
// integer is a client error.
func parseMentorFilter(c *gin.Context) (models.MentorFilter, error) {
	var filter models.MentorFilter

	filter.Query = c.Query("query")
	filter.Availability = c.Query("availability")

	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				filter.Skills = append(filter.Skills, skill)
			}
		}
	}

	if raw := c.Query("minPrice"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperrors.NewBadRequestError("Invalid query parameter: minPrice is not an integer")
		}
		filter.MinPrice = &value
	}

	if raw := c.Query("maxPrice"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperrors.NewBadRequestError("Invalid query parameter: maxPrice is not an integer")
		}
		filter.MaxPrice = &value
	}

	return filter, nil
}
