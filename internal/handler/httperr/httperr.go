package httperr

import (
	"net/http"

	"cowork-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

const internalMessage = "Internal server error"

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = string(codeForStatus(status, err))
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err to a status by its kind. Internal failures never expose
// their message.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusFor(kind)

	msg := internalMessage
	if kind != errs.KindInternal {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, nil)
}

func StatusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation, errs.KindConflict, errs.KindInvalidTransition:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func codeForStatus(status int, err error) errs.Kind {
	if kind := errs.KindOf(err); kind != errs.KindInternal {
		return kind
	}
	switch status {
	case http.StatusBadRequest:
		return errs.KindValidation
	case http.StatusUnauthorized:
		return errs.KindUnauthenticated
	case http.StatusForbidden:
		return errs.KindForbidden
	case http.StatusNotFound:
		return errs.KindNotFound
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return errs.KindInternal
	}
}
