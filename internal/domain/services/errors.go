package services

import "errors"

// Sentinel errors returned by the domain services. Controllers map these to
// response codes with errors.Is.
var (
	ErrGrampanchayatNotFound = errors.New("grampanchayat not found")
	ErrGrampanchayatExists   = errors.New("grampanchayat id already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")

	ErrPhedNotFound = errors.New("phed not found")
	ErrPhedExists   = errors.New("phed id or phone number already exists")

	ErrConsumerNotFound  = errors.New("consumer not found")
	ErrMobileRegistered  = errors.New("mobile number already registered")
	ErrAadharRegistered  = errors.New("aadhar number already registered")
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrNotComplaintOwner = errors.New("complaint belongs to another grampanchayat")

	ErrInvalidStatus   = errors.New("invalid complaint status")
	ErrInvalidCategory = errors.New("invalid inventory category")
)
