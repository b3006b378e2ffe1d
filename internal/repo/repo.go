package repo

import (
	"context"

	"github.com/google/uuid"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo/pgdb"
	"renovation-marketplace-api/internal/workflow"
	"renovation-marketplace-api/pkg/postgres"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error)
	GetUserById(ctx context.Context, id string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	DoesUsernameExist(ctx context.Context, username string) (bool, error)

	CreateSession(ctx context.Context, tokenId uuid.UUID, userId uuid.UUID) error
	RevokeSession(ctx context.Context, tokenId string) error
	IsSessionRevoked(ctx context.Context, tokenId string) (bool, error)
}

type Contractor interface {
	CreateContractor(ctx context.Context, input *entity.CreateContractorInput) (uuid.UUID, error)
	GetContractorById(ctx context.Context, id string) (*entity.Contractor, error)
	GetContractorByUserId(ctx context.Context, userId string) (*entity.Contractor, error)
	GetContractors(ctx context.Context, pg *entity.PaginationInput) ([]entity.Contractor, error)
}

type Property interface {
	CreateProperty(ctx context.Context, input *entity.CreatePropertyInput) (uuid.UUID, error)
	GetPropertyById(ctx context.Context, id string) (*entity.Property, error)
	GetProperties(ctx context.Context, filter *entity.PropertyFilter, pg *entity.PaginationInput) ([]entity.Property, error)
	GetPropertyImages(ctx context.Context, propertyId string, kind string) ([]entity.PropertyImage, error)

	SetAdminDecision(ctx context.Context, propertyId string, status workflow.Status, approverId uuid.UUID) error
	AssignContractor(ctx context.Context, propertyId string, contractorId uuid.UUID) error
	SaveEvaluation(ctx context.Context, propertyId string, status workflow.Status, rating float64, report string) error
	SaveCompletion(ctx context.Context, propertyId string, note string, imageURLs []string) error
}

type Offer interface {
	CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (uuid.UUID, error)
	GetOfferById(ctx context.Context, id string) (*entity.PriceOffer, error)
	GetOffersByContractorId(ctx context.Context, contractorId string, pg *entity.PaginationInput) ([]entity.PriceOffer, error)
	GetOffersByHomeownerId(ctx context.Context, homeownerId string, pg *entity.PaginationInput) ([]entity.PriceOffer, error)
	GetAllOffers(ctx context.Context, pg *entity.PaginationInput) ([]entity.PriceOffer, error)

	// AcceptOffer atomically accepts the offer, rejects competing pending
	// offers and moves the property to in_progress with the offer's
	// contractor assigned.
	AcceptOffer(ctx context.Context, offer *entity.PriceOffer) error
	// RejectOffer atomically rejects the offer and reopens the property
	// when no pending offers remain on it.
	RejectOffer(ctx context.Context, offer *entity.PriceOffer) error
}

type Evaluation interface {
	CreateEvaluationRequest(ctx context.Context, propertyId uuid.UUID, contractorId uuid.UUID) (uuid.UUID, error)
	GetEvaluationRequestsByContractorId(ctx context.Context, contractorId string, pg *entity.PaginationInput) ([]entity.EvaluationRequest, error)
	CompleteEvaluationRequest(ctx context.Context, propertyId string, contractorId uuid.UUID) error
}

type Repositories struct {
	Diagnostics
	User
	Contractor
	Property
	Offer
	Evaluation
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Contractor:  pgdb.NewContractorRepo(p),
		Property:    pgdb.NewPropertyRepo(p),
		Offer:       pgdb.NewOfferRepo(p),
		Evaluation:  pgdb.NewEvaluationRepo(p),
	}
}
