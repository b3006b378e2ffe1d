package entity

import "github.com/google/uuid"

// db model
type PriceOffer struct {
	Id            uuid.UUID `json:"id" db:"id"`
	PropertyId    uuid.UUID `json:"propertyId" db:"property_id"`
	PropertyTitle string    `json:"propertyTitle" db:"title"`
	ContractorId  uuid.UUID `json:"contractorId" db:"contractor_id"`
	Amount        float64   `json:"amount" db:"amount"`
	Description   string    `json:"description" db:"description"`
	Status        string    `json:"status" db:"status"`
	ProposedAt    string    `json:"proposedAt" db:"proposed_at"`
}

// service + repo input model
type CreateOfferInput struct {
	PropertyId   string    // given
	ContractorId uuid.UUID // set from the session
	Amount       float64   // given
	Description  string    // given
	// Status should be set: common.OfferPending
	// Id UUID sets automatically
	// ProposedAt sets automatically
}

// controller model
type PriceOfferOutputModel struct {
	Id            string  `json:"id"`
	PropertyId    string  `json:"property"`
	PropertyTitle string  `json:"propertyTitle"`
	ContractorId  string  `json:"contractor"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	ProposedAt    string  `json:"proposedAt"`
}
