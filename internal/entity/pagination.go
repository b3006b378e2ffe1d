package entity

import "renovation-marketplace-api/internal/workflow"

type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	return &PaginationInput{
		Limit:  limit,
		Offset: offset,
	}
}

// PropertyFilter narrows property listings. Empty fields match everything,
// non-empty fields are combined with AND.
type PropertyFilter struct {
	Status       workflow.Status
	HomeownerId  string
	ContractorId string
}
