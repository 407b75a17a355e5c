package pet

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/handler"
	"github.com/vetify/booking-api/internal/middleware"
	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/service/pet"
)

const maxPhotoSize = 5 << 20

type Handler struct {
	service *pet.Service
}

func NewHandler(service *pet.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/pets")
	{
		g.GET("", h.ListPets)
		g.POST("", h.CreatePet)
		g.GET("/:id", h.GetPet)
		g.PUT("/:id", h.UpdatePet)
		g.DELETE("/:id", h.DeletePet)
		g.POST("/:id/photo", h.UploadPhoto)
	}
}

func (h *Handler) ListPets(c *gin.Context) {
	user := middleware.CurrentUser(c)

	pets, err := h.service.List(c.Request.Context(), user.ID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(pets))
}

func (h *Handler) CreatePet(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req model.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetPet(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid pet ID"))
		return
	}

	found, err := h.service.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) UpdatePet(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid pet ID"))
		return
	}

	var req model.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), user.ID, id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeletePet(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid pet ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), user.ID, id); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid pet ID"))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("photo file is required"))
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("photo exceeds maximum size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("failed to read photo"))
		return
	}
	defer file.Close()

	updated, err := h.service.UploadPhoto(c.Request.Context(), user.ID, id, file, fileHeader.Filename)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}
