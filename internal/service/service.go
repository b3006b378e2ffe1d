package service

import (
	"context"
	"time"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Auth interface {
	Signup(ctx context.Context, input *entity.SignupInput) (*entity.AuthOutputModel, error)
	Login(ctx context.Context, username string, password string) (*entity.AuthOutputModel, error)
	Logout(ctx context.Context, session *entity.Session) error

	// ResolveSession turns a raw token into an actor session, rejecting
	// revoked and malformed tokens. Used by the auth middleware.
	ResolveSession(ctx context.Context, token string) (*entity.Session, error)
}

type Property interface {
	CreateProperty(ctx context.Context, session *entity.Session, input *entity.CreatePropertyInput) (*entity.PropertyOutputModel, error)
	GetProperties(ctx context.Context, session *entity.Session, statusFilter string, pg *entity.PaginationInput) ([]entity.PropertyOutputModel, error)
	GetPropertyDetails(ctx context.Context, session *entity.Session, propertyId string) (*entity.PropertyDetailOutputModel, error)

	AdminReview(ctx context.Context, session *entity.Session, propertyId string, action string) (*entity.PropertyOutputModel, error)
	AssignContractor(ctx context.Context, session *entity.Session, propertyId string, contractorId string) (*entity.PropertyOutputModel, error)
	ContractorReview(ctx context.Context, session *entity.Session, propertyId string, rating float64, report string, action string) (*entity.PropertyOutputModel, error)
	MarkCompleted(ctx context.Context, session *entity.Session, propertyId string, imageURLs []string, note string) (*entity.PropertyOutputModel, error)
}

type Offer interface {
	SubmitOffer(ctx context.Context, session *entity.Session, propertyId string, amount float64, description string) (*entity.PriceOfferOutputModel, error)
	GetOffers(ctx context.Context, session *entity.Session, pg *entity.PaginationInput) ([]entity.PriceOfferOutputModel, error)
	AcceptOffer(ctx context.Context, session *entity.Session, offerId string) (*entity.PriceOfferOutputModel, error)
	RejectOffer(ctx context.Context, session *entity.Session, offerId string) (*entity.PriceOfferOutputModel, error)
}

type Contractor interface {
	GetContractors(ctx context.Context, pg *entity.PaginationInput) ([]entity.ContractorOutputModel, error)
	GetEvaluationRequests(ctx context.Context, session *entity.Session, pg *entity.PaginationInput) ([]entity.EvaluationRequestOutputModel, error)
}

type Services struct {
	Diagnostics Diagnostics
	Auth        Auth
	Property    Property
	Offer       Offer
	Contractor  Contractor
}

type AuthDeps struct {
	JwtSecret string
	TokenTTL  time.Duration
}

func NewServices(repos *repo.Repositories, authDeps AuthDeps) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Auth:        NewAuthService(repos, authDeps),
		Property:    NewPropertyService(repos),
		Offer:       NewOfferService(repos),
		Contractor:  NewContractorService(repos),
	}
}
