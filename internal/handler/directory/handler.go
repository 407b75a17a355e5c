package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetify/booking-api/internal/handler"
	"github.com/vetify/booking-api/internal/service/directory"
)

type Handler struct {
	service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/veterinarians", h.ListVeterinarians)
	rg.GET("/schedule", h.ListSchedule)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListActiveServices(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}

func (h *Handler) ListVeterinarians(c *gin.Context) {
	vets, err := h.service.ListActiveVeterinarians(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(vets))
}

func (h *Handler) ListSchedule(c *gin.Context) {
	schedules, err := h.service.ListClinicSchedule(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedules))
}
