package common

// user roles, fixed at signup
const (
	RoleHomeowner  = "user"
	RoleAdmin      = "admin"
	RoleContractor = "contractor"
)

// price offer statuses
const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
)

// review actions (admin_review, contractor_review)
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// property types
const (
	House     = "house"
	Apartment = "apartment"
)

// property conditions
const (
	ConditionGood        = "GOOD"
	ConditionFair        = "FAIR"
	ConditionPoor        = "POOR"
	ConditionDilapidated = "DILAPIDATED"
)

// image kinds
const (
	ImageGallery    = "gallery"
	ImageCompletion = "completion"
)

// evaluation rating bounds
const (
	MinRating = 1
	MaxRating = 5
)
