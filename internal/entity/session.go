package entity

import (
	"github.com/google/uuid"

	"renovation-marketplace-api/internal/common"
)

// Session is the actor context resolved from the request token. Workflow
// calls take it explicitly instead of reading identity from any ambient
// state; ContractorId is set only for contractor accounts.
type Session struct {
	UserId       uuid.UUID
	ContractorId uuid.NullUUID
	Role         string
	TokenId      uuid.UUID
}

func (s *Session) IsAdmin() bool {
	return s.Role == common.RoleAdmin
}

func (s *Session) IsContractor() bool {
	return s.Role == common.RoleContractor
}
