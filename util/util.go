package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Collection names
const (
	PatientCollection     = "patients"
	StaffCollection       = "staff"
	AppointmentCollection = "appointments"
	InvoiceCollection     = "invoices"
	InventoryCollection   = "inventory"
	UserCollection        = "users"
	ClaimCollection       = "claims"
)

// Cache key prefixes
const (
	PatientKey = "PATIENT:"
	StatsKey   = "DASHBOARD_STATS:"
)

const (
	PATIENT_NOT_FOUND              = "Patient not found"
	STAFF_NOT_FOUND                = "Staff member not found"
	APPOINTMENT_NOT_FOUND          = "Appointment not found"
	INVOICE_NOT_FOUND              = "Invoice not found"
	ITEM_NOT_FOUND                 = "Item not found"
	USER_NOT_FOUND                 = "User not found"
	USER_ALREADY_EXISTS            = "User already exists"
	STAFF_EMAIL_ALREADY_EXISTS     = "Staff member with this email already exists"
	ITEM_ALREADY_EXISTS            = "Item already exists"
	INVALID_CREDENTIALS            = "Invalid Credentials"
	INCORRECT_CURRENT_PASSWORD     = "Incorrect current password"
	NO_TOKEN_PROVIDED              = "No token, authorization denied"
	TOKEN_IS_NOT_VALID             = "Token is not valid"
	INSUFFICIENT_PERMISSIONS       = "Access denied: insufficient permissions"
	NAME_IS_REQUIRED               = "Name is required"
	EMAIL_IS_REQUIRED              = "Email is required"
	PASSWORD_IS_REQUIRED           = "Password is required"
	PATIENT_FIELDS_REQUIRED        = "Name, age, gender and phone are required"
	INVALID_GENDER                 = "Gender must be Male, Female or Other"
	APPOINTMENT_FIELDS_REQUIRED    = "Patient, doctor, date and time are required"
	STAFF_FIELDS_REQUIRED          = "Name, role, email and phone are required"
	INVOICE_FIELDS_REQUIRED        = "Patient and a positive total amount are required"
	ITEM_FIELDS_REQUIRED           = "Name, category and unit are required"
	CLAIM_FIELDS_REQUIRED          = "Patient, provider and a positive amount are required"
	NEW_PASSWORD_IS_REQUIRED       = "New password is required"
	INVALID_DATE_FORMAT            = "Invalid date, use YYYY-MM-DD or RFC3339"
	INVALID_STAFF_ROLE             = "Invalid staff role"
	INVALID_ITEM_CATEGORY          = "Invalid inventory category"
	UNABLE_TO_FETCH_USER_FROM_CTX  = "Unable to fetch user from context"
	VISIT_ALREADY_COMPLETED        = "Appointment is already completed"
	APPOINTMENT_ALREADY_CANCELLED  = "Appointment is cancelled"
	FAILED_TO_HASH_PASSWORD        = "Failed to hash password"
	FAILED_TO_GENERATE_TOKEN       = "Failed to generate token"
)

// Error kinds. Services attach one of these to every failure so the
// controllers can map it to a status code with HTTPStatus.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrConflict           = errors.New("conflict")
)

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Unwrap() error { return e.kind }

func NotFoundError(msg string) error { return &apiError{ErrNotFound, msg} }

func ValidationError(msg string) error { return &apiError{ErrValidation, msg} }

func UnauthorizedError(msg string) error { return &apiError{ErrUnauthorized, msg} }

func ForbiddenError(msg string) error { return &apiError{ErrForbidden, msg} }

func InvalidCredentialsError() error { return &apiError{ErrInvalidCredentials, INVALID_CREDENTIALS} }

func IncorrectPasswordError() error { return &apiError{ErrIncorrectPassword, INCORRECT_CURRENT_PASSWORD} }

func ConflictError(msg string) error { return &apiError{ErrConflict, msg} }

/*
* Map the error kind to an http status
* Anything without a kind is a server error
 */
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrIncorrectPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func FailedResponse(err error) gin.H {
	return gin.H{
		"status":  "error",
		"message": err.Error(),
	}
}

func MessageResponse(msg string) gin.H {
	return gin.H{"msg": msg}
}
