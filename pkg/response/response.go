package response

import (
	"mime"
	"net/http"

	"anoa.com/lebenslauf/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextAdminID is the gin context key set by the auth middleware.
const ContextAdminID = "admin_id"

// GetAdminID retrieves the authenticated admin ID from the context
func GetAdminID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(ContextAdminID)
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return id, nil
}

// ResponseError writes the standard error body and logs internal errors.
func ResponseError(c *gin.Context, log *zap.Logger, err error) {
	code := apperror.MapErrorToStatus(err)

	if code >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(code, gin.H{"error": http.StatusText(code)})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// Attachment sends a downloadable file. Non-ASCII names are sent in the
// RFC 2231 filename* form.
func Attachment(c *gin.Context, fileName, contentType string, body []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Data(http.StatusOK, contentType, body)
}
