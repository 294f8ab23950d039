package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/labworks/backend/internal/domain/shared"
	"github.com/labworks/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// parseID parses the :id route parameter
func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// OK sends a 200 response with the given body
func (h *BaseHandler) OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created acknowledges a create with the new row's id
func (h *BaseHandler) Created(c *gin.Context, id int64, message string) {
	c.JSON(http.StatusOK, dto.CreateResponse{ID: id, Message: message})
}

// Message acknowledges an update or delete
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// BadRequest sends a 400 with the given error message
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// NotFound sends a 404 with the given error message
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
}

// HandleError maps an error onto the wire contract: domain validation errors
// become 400, not-found becomes 404 with the resource-specific message, and
// everything else (storage failures included) is surfaced verbatim as 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error, notFoundMessage string) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		message := domainErr.Message
		if domainErr.Code == shared.ErrNotFound.Code && notFoundMessage != "" {
			message = notFoundMessage
		}
		c.JSON(dto.HTTPStatusForCode(domainErr.Code), dto.NewErrorResponse(message))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
}
