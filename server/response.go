package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/carhub/errors"
)

// PagedResponse is the envelope for paginated collection responses.
type PagedResponse struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries pagination metadata.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta computes pagination metadata for a collection of total items.
func NewMeta(page, pageSize, total int) *Meta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return &Meta{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// RespondWithError inspects err: if it is an *apperrors.AppError the status
// and flat body are derived automatically; otherwise a generic 500 is sent.
// Internal causes are never serialized.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, appErr.Body())
		return
	}
	internal := apperrors.Internal(err)
	c.JSON(internal.HTTPStatus, internal.Body())
}

// RespondOK sends a 200 response with the given body.
func RespondOK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// RespondCreated sends a 201 response with the given body.
func RespondCreated(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondPage sends a 200 response with data and pagination metadata.
func RespondPage(c *gin.Context, data any, meta *Meta) {
	c.JSON(http.StatusOK, PagedResponse{Data: data, Meta: meta})
}
