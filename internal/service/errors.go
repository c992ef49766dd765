package service

import "errors"

// Error taxonomy shared by every service. Handlers map these onto HTTP status
// codes with errors.Is, so authorization failures stay distinct from missing
// records and uniqueness conflicts.
var (
	// ErrNotFound means a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied means the caller's role is not permitted to perform
	// the operation. Never returned for missing records.
	ErrAccessDenied = errors.New("access denied")

	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrConflict means a storage-level uniqueness constraint was violated
	// (username, policy number, claim number).
	ErrConflict = errors.New("conflict")

	// ErrDomainRule means the operation violates a business rule, e.g.
	// reimbursing a claim that is not approved.
	ErrDomainRule = errors.New("domain rule violated")
)
