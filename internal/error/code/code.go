package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusCreated - 201: resource created.
	StatusCreated = 201
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing credential.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenMissing - 401: no token provided.
	ErrTokenMissing
	// ErrTokenInvalid - 400: invalid or expired token.
	ErrTokenInvalid
	// ErrForbidden - 403: not allowed to act on this resource.
	ErrForbidden
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Grampanchayat error codes (101xxx).
const (
	// ErrGrampanchayatNotFound - 404: grampanchayat not found.
	ErrGrampanchayatNotFound int = iota + 101000
	// ErrGrampanchayatExists - 400: grampanchayat id already registered.
	ErrGrampanchayatExists
	// ErrInvalidPassword - 400: password mismatch on login.
	ErrInvalidPassword
)

// PHED error codes (102xxx).
const (
	// ErrPhedNotFound - 404: PHED user not found.
	ErrPhedNotFound int = iota + 102000
	// ErrPhedExists - 400: PHED id or phone number already exists.
	ErrPhedExists
	// ErrPhedCredentials - 400: invalid PHED id or password.
	ErrPhedCredentials
)

// Consumer error codes (103xxx).
const (
	// ErrConsumerNotFound - 404: consumer not found.
	ErrConsumerNotFound int = iota + 103000
	// ErrMobileRegistered - 400: mobile number already registered.
	ErrMobileRegistered
	// ErrAadharRegistered - 400: aadhar number already registered.
	ErrAadharRegistered
)

// Complaint error codes (104xxx).
const (
	// ErrComplaintNotFound - 404: complaint not found.
	ErrComplaintNotFound int = iota + 104000
	// ErrInvalidStatus - 400: invalid complaint status value.
	ErrInvalidStatus
	// ErrInvalidCategory - 400: invalid inventory category.
	ErrInvalidCategory
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
