package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/handler"
	"github.com/vetify/booking-api/internal/middleware"
	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/service/booking"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/appointments")
	{
		g.GET("", h.ListAppointments)
		g.POST("", h.CreateAppointment)
		g.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	user := middleware.CurrentUser(c)

	appointments, err := h.service.ListUserAppointments(c.Request.Context(), user.ID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointment, err := h.service.CreateAppointment(c.Request.Context(), user.ID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), user.ID, id); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
