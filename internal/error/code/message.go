package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:         "Success",
	ErrUnknown:         "An unexpected error occurred",
	ErrBind:            "Invalid request body",
	ErrValidation:      "Request validation failed",
	ErrTokenMissing:    "Access denied. No token provided.",
	ErrTokenInvalid:    "Invalid or expired token",
	ErrForbidden:       "You are not authorized to perform this action",
	ErrTooManyRequests: "Too many requests, please try again later",

	// Grampanchayat error codes
	ErrGrampanchayatNotFound: "Grampanchayat not found",
	ErrGrampanchayatExists:   "Grampanchayat ID is already registered",
	ErrInvalidPassword:       "Invalid password",

	// PHED error codes
	ErrPhedNotFound:    "PHED ID not found.",
	ErrPhedExists:      "PHED ID or phone number already exists.",
	ErrPhedCredentials: "Invalid PHED ID or password.",

	// Consumer error codes
	ErrConsumerNotFound: "User not found",
	ErrMobileRegistered: "Mobile number is already registered",
	ErrAadharRegistered: "Aadhar number is already registered",

	// Complaint error codes
	ErrComplaintNotFound: "Complaint not found.",
	ErrInvalidStatus:     "Invalid status.",
	ErrInvalidCategory:   "Invalid category selected.",

	// Database error codes
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenMissing:    StatusUnauthorized,
	ErrTokenInvalid:    StatusBadRequest,
	ErrForbidden:       StatusForbidden,
	ErrTooManyRequests: StatusTooManyRequests,

	// Grampanchayat error codes
	ErrGrampanchayatNotFound: StatusNotFound,
	ErrGrampanchayatExists:   StatusBadRequest,
	ErrInvalidPassword:       StatusBadRequest,

	// PHED error codes
	ErrPhedNotFound:    StatusNotFound,
	ErrPhedExists:      StatusBadRequest,
	ErrPhedCredentials: StatusBadRequest,

	// Consumer error codes
	ErrConsumerNotFound: StatusNotFound,
	ErrMobileRegistered: StatusBadRequest,
	ErrAadharRegistered: StatusBadRequest,

	// Complaint error codes
	ErrComplaintNotFound: StatusNotFound,
	ErrInvalidStatus:     StatusBadRequest,
	ErrInvalidCategory:   StatusBadRequest,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "An unexpected error occurred"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
