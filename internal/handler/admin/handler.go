// Package admin serves the superuser dashboard endpoints. Every route
// registered here sits behind the superuser gate in the router.
package admin

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/handler"
	"github.com/vetify/booking-api/internal/middleware"
	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/service/admin"
)

const maxDocumentSize = 20 << 20

type Handler struct {
	service *admin.Service
}

func NewHandler(service *admin.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/reports", h.Reports)

	rg.GET("/appointments", h.ListAppointments)
	rg.DELETE("/appointments/:id", h.DeleteAppointment)

	rg.GET("/users", h.ListUsers)
	rg.POST("/users/:id/toggle", h.ToggleUser)

	rg.GET("/pets", h.ListPets)
	rg.DELETE("/pets/:id", h.DeletePet)

	rg.GET("/veterinarians", h.ListVeterinarians)
	rg.POST("/veterinarians", h.CreateVeterinarian)
	rg.POST("/veterinarians/:id/toggle", h.ToggleVeterinarian)

	rg.GET("/services", h.ListServices)
	rg.POST("/services", h.CreateService)
	rg.POST("/services/:id/toggle", h.ToggleService)

	rg.GET("/schedule", h.ListSchedules)
	rg.PUT("/schedule/:day", h.UpdateSchedule)

	rg.GET("/documents", h.ListDocuments)
	rg.POST("/documents", h.UploadDocument)
	rg.GET("/documents/:id/url", h.DocumentURL)
	rg.DELETE("/documents/:id", h.DeleteDocument)
	rg.POST("/documents/:id/toggle", h.ToggleDocument)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) Reports(c *gin.Context) {
	period := 0
	if raw := c.Query("period"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid period"))
			return
		}
		period = parsed
	}

	stats, err := h.service.Reports(c.Request.Context(), period)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) ListAppointments(c *gin.Context) {
	filter := model.AppointmentFilter{
		Status: model.AppointmentStatusFilter(c.DefaultQuery("status", "all")),
		Search: c.Query("search"),
	}

	switch filter.Status {
	case model.AppointmentFilterAll, model.AppointmentFilterToday,
		model.AppointmentFilterUpcoming, model.AppointmentFilterPast:
	default:
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid status filter"))
		return
	}

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid date, expected YYYY-MM-DD"))
			return
		}
		filter.Date = &date
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
}

func (h *Handler) ToggleUser(c *gin.Context) {
	h.toggle(c, "invalid user ID", h.service.ToggleUserActive)
}

func (h *Handler) ListPets(c *gin.Context) {
	filter := model.PetFilter{
		PetType: model.PetType(c.Query("pet_type")),
		Search:  c.Query("search"),
	}

	switch filter.PetType {
	case "", model.PetTypeDog, model.PetTypeCat, model.PetTypeOther:
	default:
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid pet type filter"))
		return
	}

	listing, err := h.service.ListPets(c.Request.Context(), filter)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(listing))
}

func (h *Handler) DeletePet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid pet ID"))
		return
	}

	if err := h.service.DeletePet(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListVeterinarians(c *gin.Context) {
	filter := model.VeterinarianFilter{
		Specialty: model.Specialty(c.Query("specialty")),
		Search:    c.Query("search"),
	}

	// empty means all specialties
	if filter.Specialty != "" && !model.ValidSpecialty(filter.Specialty) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid specialty filter"))
		return
	}

	listing, err := h.service.ListVeterinarians(c.Request.Context(), filter)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(listing))
}

func (h *Handler) CreateVeterinarian(c *gin.Context) {
	var req model.CreateVeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	vet, err := h.service.CreateVeterinarian(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(vet))
}

func (h *Handler) ToggleVeterinarian(c *gin.Context) {
	h.toggle(c, "invalid veterinarian ID", h.service.ToggleVetActive)
}

func (h *Handler) ListServices(c *gin.Context) {
	listing, err := h.service.ListServices(c.Request.Context(), c.Query("search"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(listing))
}

func (h *Handler) CreateService(c *gin.Context) {
	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(svc))
}

func (h *Handler) ToggleService(c *gin.Context) {
	h.toggle(c, "invalid service ID", h.service.ToggleServiceActive)
}

func (h *Handler) ListSchedules(c *gin.Context) {
	overview, err := h.service.ListSchedules(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(overview))
}

func (h *Handler) UpdateSchedule(c *gin.Context) {
	day := c.Param("day")
	if !slices.Contains(model.WeekdayOrder, day) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid weekday"))
		return
	}

	var req struct {
		IsOpen      bool   `json:"is_open"`
		OpeningTime string `json:"opening_time"`
		ClosingTime string `json:"closing_time"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	schedule := &model.ClinicSchedule{
		DayOfWeek:   day,
		IsOpen:      req.IsOpen,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		Notes:       req.Notes,
	}
	if err := h.service.UpdateSchedule(c.Request.Context(), schedule); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedule))
}

func (h *Handler) ListDocuments(c *gin.Context) {
	documents, err := h.service.ListDocuments(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(documents))
}

func (h *Handler) UploadDocument(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req model.CreateDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("document file is required"))
		return
	}
	if fileHeader.Size > maxDocumentSize {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("document exceeds maximum size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("failed to read document"))
		return
	}
	defer file.Close()

	doc, err := h.service.UploadDocument(c.Request.Context(), user.ID, &req, file, fileHeader.Filename)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(doc))
}

func (h *Handler) DocumentURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid document ID"))
		return
	}

	url, err := h.service.DocumentURL(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"url": url}))
}

func (h *Handler) DeleteDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid document ID"))
		return
	}

	if err := h.service.DeleteDocument(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ToggleDocument(c *gin.Context) {
	h.toggle(c, "invalid document ID", h.service.ToggleDocumentActive)
}

func (h *Handler) toggle(c *gin.Context, badIDMsg string, fn func(ctx context.Context, id uuid.UUID) (bool, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(badIDMsg))
		return
	}

	active, err := fn(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"is_active": active}))
}
