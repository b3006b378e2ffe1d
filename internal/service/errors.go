package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrOfferNotFound      = errors.New("price offer not found")
	ErrContractorNotFound = errors.New("contractor not found")

	ErrAdminOnly             = errors.New("only admins can review properties and assign contractors")
	ErrContractorOnly        = errors.New("only contractors can perform this action")
	ErrNotPropertyOwner      = errors.New("only the property owner can decide on this offer")
	ErrNotAssignedContractor = errors.New("property is not assigned to this contractor")

	ErrPropertyNotPending    = errors.New("property is no longer awaiting admin review")
	ErrPropertyNotEvaluable  = errors.New("property is not awaiting evaluation")
	ErrPropertyNotListed     = errors.New("property is not open for price offers")
	ErrPropertyNotInProgress = errors.New("work on the property is not in progress")
	ErrOfferAlreadyDecided   = errors.New("price offer has already been decided")
	ErrNoOpenPriceProposal   = errors.New("property has no open price proposal")

	ErrInvalidReviewAction   = errors.New("action must be approve or reject")
	ErrInvalidRating         = errors.New("rating is out of the allowed range")
	ErrEmptyEvaluationReport = errors.New("evaluation report can't be empty")
	ErrInvalidOfferAmount    = errors.New("offer amount must be positive")
	ErrNoCompletionImages    = errors.New("at least one completion image is required")
	ErrInvalidStatusFilter   = errors.New("unknown property status")
	ErrInvalidRole           = errors.New("unknown role")

	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionRevoked     = errors.New("session has been revoked")
)
