package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "rice-leaf-detection/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. The HTTP status comes from err when it is a
// *pkgErrors.HTTPError, otherwise 400.
func Error(c *gin.Context, err error, data any) {
	if data == nil {
		data = map[string]interface{}{}
	}

	c.JSON(pkgErrors.StatusCode(err), Resp{
		ErrorCode: ErrorCodeFailed,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests aborts the request with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
