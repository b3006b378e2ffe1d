package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/workflow"
)

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *userRepoMock) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *userRepoMock) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *userRepoMock) DoesUsernameExist(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *userRepoMock) CreateSession(ctx context.Context, tokenId uuid.UUID, userId uuid.UUID) error {
	args := m.Called(ctx, tokenId, userId)
	return args.Error(0)
}

func (m *userRepoMock) RevokeSession(ctx context.Context, tokenId string) error {
	args := m.Called(ctx, tokenId)
	return args.Error(0)
}

func (m *userRepoMock) IsSessionRevoked(ctx context.Context, tokenId string) (bool, error) {
	args := m.Called(ctx, tokenId)
	return args.Bool(0), args.Error(1)
}

type contractorRepoMock struct {
	mock.Mock
}

func (m *contractorRepoMock) CreateContractor(ctx context.Context, input *entity.CreateContractorInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *contractorRepoMock) GetContractorById(ctx context.Context, id string) (*entity.Contractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contractor), args.Error(1)
}

func (m *contractorRepoMock) GetContractorByUserId(ctx context.Context, userId string) (*entity.Contractor, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contractor), args.Error(1)
}

func (m *contractorRepoMock) GetContractors(ctx context.Context, pg *entity.PaginationInput) ([]entity.Contractor, error) {
	args := m.Called(ctx, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contractor), args.Error(1)
}

type propertyRepoMock struct {
	mock.Mock
}

func (m *propertyRepoMock) CreateProperty(ctx context.Context, input *entity.CreatePropertyInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *propertyRepoMock) GetPropertyById(ctx context.Context, id string) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *propertyRepoMock) GetProperties(ctx context.Context, filter *entity.PropertyFilter, pg *entity.PaginationInput) ([]entity.Property, error) {
	args := m.Called(ctx, filter, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Property), args.Error(1)
}

func (m *propertyRepoMock) GetPropertyImages(ctx context.Context, propertyId string, kind string) ([]entity.PropertyImage, error) {
	args := m.Called(ctx, propertyId, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PropertyImage), args.Error(1)
}

func (m *propertyRepoMock) SetAdminDecision(ctx context.Context, propertyId string, status workflow.Status, approverId uuid.UUID) error {
	args := m.Called(ctx, propertyId, status, approverId)
	return args.Error(0)
}

func (m *propertyRepoMock) AssignContractor(ctx context.Context, propertyId string, contractorId uuid.UUID) error {
	args := m.Called(ctx, propertyId, contractorId)
	return args.Error(0)
}

func (m *propertyRepoMock) SaveEvaluation(ctx context.Context, propertyId string, status workflow.Status, rating float64, report string) error {
	args := m.Called(ctx, propertyId, status, rating, report)
	return args.Error(0)
}

func (m *propertyRepoMock) SaveCompletion(ctx context.Context, propertyId string, note string, imageURLs []string) error {
	args := m.Called(ctx, propertyId, note, imageURLs)
	return args.Error(0)
}

type offerRepoMock struct {
	mock.Mock
}

func (m *offerRepoMock) CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *offerRepoMock) GetOfferById(ctx context.Context, id string) (*entity.PriceOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PriceOffer), args.Error(1)
}

func (m *offerRepoMock) GetOffersByContractorId(ctx context.Context, contractorId string, pg *entity.PaginationInput) ([]entity.PriceOffer, error) {
	args := m.Called(ctx, contractorId, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PriceOffer), args.Error(1)
}

func (m *offerRepoMock) GetOffersByHomeownerId(ctx context.Context, homeownerId string, pg *entity.PaginationInput) ([]entity.PriceOffer, error) {
	args := m.Called(ctx, homeownerId, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PriceOffer), args.Error(1)
}

func (m *offerRepoMock) GetAllOffers(ctx context.Context, pg *entity.PaginationInput) ([]entity.PriceOffer, error) {
	args := m.Called(ctx, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PriceOffer), args.Error(1)
}

func (m *offerRepoMock) AcceptOffer(ctx context.Context, offer *entity.PriceOffer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *offerRepoMock) RejectOffer(ctx context.Context, offer *entity.PriceOffer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

type evaluationRepoMock struct {
	mock.Mock
}

func (m *evaluationRepoMock) CreateEvaluationRequest(ctx context.Context, propertyId uuid.UUID, contractorId uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, propertyId, contractorId)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *evaluationRepoMock) GetEvaluationRequestsByContractorId(ctx context.Context, contractorId string, pg *entity.PaginationInput) ([]entity.EvaluationRequest, error) {
	args := m.Called(ctx, contractorId, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EvaluationRequest), args.Error(1)
}

func (m *evaluationRepoMock) CompleteEvaluationRequest(ctx context.Context, propertyId string, contractorId uuid.UUID) error {
	args := m.Called(ctx, propertyId, contractorId)
	return args.Error(0)
}
