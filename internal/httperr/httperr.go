package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond writes err using its kind: invalid input is 400, a missing entity
// is 404 and anything else is a retryable 500 carrying fallbackCode.
func Respond(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	var be BusinessError
	var nf NotFoundError
	var fb ForbiddenError

	switch {
	case errors.As(err, &be):
		BadRequest(c, be.Code, messageFor(be.Code))
	case errors.As(err, &nf):
		NotFound(c, nf.Code, messageFor(nf.Code))
	case errors.As(err, &fb):
		Forbidden(c, fb.Code, messageFor(fb.Code))
	default:
		_ = c.Error(err)
		Internal(c, fallbackCode, fallbackMessage)
	}
}

var messages = map[string]string{
	"invalid_request":             "Invalid request.",
	"invalid_title":               "Title must have at least 3 characters.",
	"invalid_description":         "Description must have at least 5 characters.",
	"missing_customer":            "customerId is required.",
	"missing_category":            "Either categoryId or subServiceId must be provided.",
	"missing_provider":            "providerId is required.",
	"missing_job":                 "jobId is required.",
	"invalid_amount":              "amountQAR must be a positive integer.",
	"invalid_rating":              "rating must be between 1 and 5.",
	"invalid_image":               "Uploaded file is not a supported image.",
	"no_pricing_config":           "No pricing configuration found for this sub-service.",
	"review_already_exists":       "This job already has a review.",
	"sub_service_not_found":       "SubService not found.",
	"service_not_found":           "Service not found.",
	"job_not_found":               "Job not found.",
	"bid_not_found":               "Bid not found.",
	"payment_not_found":           "Payment not found.",
	"seed_not_allowed":            "Not allowed in production.",
	"payments_not_configured":     "Payments provider is not configured.",
	"photo_storage_disabled":      "Photo storage is not configured.",
	"missing_intent":              "intentId is required.",
	"invalid_scheduled_at":        "scheduledAt must be an ISO-8601 datetime.",
	"provider_not_found":          "Provider not found.",
	"referenced_entity_not_found": "Referenced customer or category not found.",
	"email_already_registered":    "Email is already registered.",
	"invalid_email_domain":        "Email domain does not look valid.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
