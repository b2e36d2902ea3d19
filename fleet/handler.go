package fleet

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/carhub/errors"
	"github.com/skillsenselab/carhub/logger"
	"github.com/skillsenselab/carhub/server"
	"github.com/skillsenselab/carhub/validation"
)

// defaultPageSize is used when the request does not specify one.
const defaultPageSize = 10

// maxPageSize caps the page size a client may request.
const maxPageSize = 100

type carRequest struct {
	Brand   string `json:"brand" validate:"required,max=100"`
	Model   string `json:"model" validate:"required,max=100"`
	Year    int    `json:"year" validate:"required,gte=1886,lte=2100"`
	OwnerID int64  `json:"ownerId" validate:"omitempty,gt=0"`
}

type ownerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

// ownerResource is an Owner plus HAL-style links.
type ownerResource struct {
	Owner
	Links map[string]halLink `json:"_links"`
}

type halLink struct {
	Href string `json:"href"`
}

// Handler serves the vehicle registry endpoints.
type Handler struct {
	store Store
	log   *logger.Logger
}

// NewHandler creates the fleet HTTP handler.
func NewHandler(store Store, log *logger.Logger) *Handler {
	return &Handler{store: store, log: log.WithComponent("fleet")}
}

// RegisterRoutes registers the car and owner endpoints under /api.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/cars", h.listCars)
	api.GET("/cars/:id", h.getCar)
	api.POST("/cars", h.createCar)
	api.DELETE("/cars/:id", h.deleteCar)
	api.GET("/owners", h.listOwners)
	api.GET("/owners/:id", h.getOwner)
	api.POST("/owners", h.createOwner)
	api.DELETE("/owners/:id", h.deleteOwner)
}

func (h *Handler) listCars(c *gin.Context) {
	page, pageSize := pageParams(c)

	cars, total, err := h.store.ListCars(c.Request.Context(), page, pageSize)
	if err != nil {
		h.log.Error("Listing cars failed", logger.ErrorFields("list_cars", err))
		server.RespondWithError(c, err)
		return
	}
	server.RespondPage(c, cars, server.NewMeta(page, pageSize, total))
}

func (h *Handler) getCar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	car, err := h.store.GetCar(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, "car", err)
		return
	}
	server.RespondOK(c, car)
}

func (h *Handler) createCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.BadRequest("Request body must be valid JSON"))
		return
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	car := &Car{Brand: req.Brand, Model: req.Model, Year: req.Year, OwnerID: req.OwnerID}
	if err := h.store.CreateCar(c.Request.Context(), car); err != nil {
		h.log.Error("Creating car failed", logger.ErrorFields("create_car", err))
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, car)
}

func (h *Handler) deleteCar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteCar(c.Request.Context(), id); err != nil {
		h.respondStoreError(c, "car", err)
		return
	}
	server.RespondNoContent(c)
}

func (h *Handler) listOwners(c *gin.Context) {
	page, pageSize := pageParams(c)

	owners, total, err := h.store.ListOwners(c.Request.Context(), page, pageSize)
	if err != nil {
		h.log.Error("Listing owners failed", logger.ErrorFields("list_owners", err))
		server.RespondWithError(c, err)
		return
	}

	resources := make([]ownerResource, 0, len(owners))
	for _, o := range owners {
		resources = append(resources, ownerLinks(o))
	}
	server.RespondPage(c, resources, server.NewMeta(page, pageSize, total))
}

func (h *Handler) getOwner(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	owner, err := h.store.GetOwner(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, "owner", err)
		return
	}
	server.RespondOK(c, ownerLinks(*owner))
}

func (h *Handler) createOwner(c *gin.Context) {
	var req ownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.BadRequest("Request body must be valid JSON"))
		return
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	owner := &Owner{FirstName: req.FirstName, LastName: req.LastName}
	if err := h.store.CreateOwner(c.Request.Context(), owner); err != nil {
		h.log.Error("Creating owner failed", logger.ErrorFields("create_owner", err))
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, ownerLinks(*owner))
}

func (h *Handler) deleteOwner(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteOwner(c.Request.Context(), id); err != nil {
		h.respondStoreError(c, "owner", err)
		return
	}
	server.RespondNoContent(c)
}

func (h *Handler) respondStoreError(c *gin.Context, resource string, err error) {
	if errors.Is(err, ErrNotFound) {
		server.RespondWithError(c, apperrors.NotFound(resource))
		return
	}
	h.log.Error("Store error", logger.ErrorFields(resource, err))
	server.RespondWithError(c, err)
}

// ownerLinks wraps an owner with HAL-style navigation links.
func ownerLinks(o Owner) ownerResource {
	self := fmt.Sprintf("/api/owners/%d", o.ID)
	return ownerResource{
		Owner: o,
		Links: map[string]halLink{
			"self":   {Href: self},
			"owners": {Href: "/api/owners"},
		},
	}
}

// idParam parses the :id route parameter, responding with bad_request on
// anything that is not a positive integer.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		server.RespondWithError(c, apperrors.BadRequest("id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// pageParams reads 1-based page and pageSize query parameters, applying the
// default and maximum page size.
func pageParams(c *gin.Context) (page, pageSize int) {
	page = 1
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		page = v
	}
	pageSize = defaultPageSize
	if v, err := strconv.Atoi(c.DefaultQuery("pageSize", "")); err == nil && v > 0 {
		pageSize = v
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
