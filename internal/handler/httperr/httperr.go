package httperr

import (
	"errors"
	"net/http"

	"marketplace-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use-case error to its status. Client errors expose the error message;
// server errors do not.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}

// AbortBind renders binding failures, with a per-field detail list for validator errors.
func AbortBind(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			detail = append(detail, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", detail)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrValidation), errs.Is(err, errs.ErrIdempotencyKeyRequired):
		return http.StatusBadRequest
	case errs.IsAny(err, errs.ErrConflict, errs.ErrIdempotencyInProgress, errs.ErrIdempotencyMismatch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
