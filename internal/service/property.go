package service

import (
	"context"
	"errors"

	"renovation-marketplace-api/internal/common"
	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo"
	"renovation-marketplace-api/internal/repo/repo_errors"
	"renovation-marketplace-api/internal/workflow"
)

type PropertyService struct {
	propertyRepo   repo.Property
	contractorRepo repo.Contractor
	userRepo       repo.User
	evaluationRepo repo.Evaluation
}

func NewPropertyService(repos *repo.Repositories) *PropertyService {
	return &PropertyService{
		propertyRepo:   repos.Property,
		contractorRepo: repos.Contractor,
		userRepo:       repos.User,
		evaluationRepo: repos.Evaluation,
	}
}

func (s *PropertyService) CreateProperty(ctx context.Context, session *entity.Session, input *entity.CreatePropertyInput) (*entity.PropertyOutputModel, error) {
	input.HomeownerId = session.UserId

	id, err := s.propertyRepo.CreateProperty(ctx, input)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.GetPropertyById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapProperty(property), nil
}

// Listings are role-scoped: admins see everything, homeowners their own
// properties, contractors the ones assigned to them. The one listing a
// contractor sees beyond their assignments is the approved one, which
// is how they browse open properties.
func (s *PropertyService) GetProperties(ctx context.Context, session *entity.Session, statusFilter string, pg *entity.PaginationInput) ([]entity.PropertyOutputModel, error) {
	var status workflow.Status
	if statusFilter != "" {
		parsed, ok := workflow.Parse(statusFilter)
		if !ok {
			return nil, ErrInvalidStatusFilter
		}
		status = parsed
	}

	filter := &entity.PropertyFilter{Status: status}
	switch session.Role {
	case common.RoleAdmin:
	case common.RoleContractor:
		if session.ContractorId.Valid && status != workflow.Approved {
			filter.ContractorId = session.ContractorId.UUID.String()
		}
	default:
		filter.HomeownerId = session.UserId.String()
	}

	properties, err := s.propertyRepo.GetProperties(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return mapProperties(properties), nil
}

func (s *PropertyService) GetPropertyDetails(ctx context.Context, session *entity.Session, propertyId string) (*entity.PropertyDetailOutputModel, error) {
	property, err := s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}

		return nil, err
	}

	homeowner, err := s.userRepo.GetUserById(ctx, property.HomeownerId.String())
	if err != nil {
		return nil, err
	}

	detail := &entity.PropertyDetailOutputModel{
		PropertyOutputModel: *mapProperty(property),
		Homeowner:           mapUser(homeowner),
	}

	if property.AssignedContractorId.Valid {
		contractor, err := s.contractorRepo.GetContractorById(ctx, property.AssignedContractorId.UUID.String())
		if err != nil {
			return nil, err
		}
		detail.Contractor = mapContractor(contractor)
	}

	images, err := s.propertyRepo.GetPropertyImages(ctx, propertyId, common.ImageGallery)
	if err != nil {
		return nil, err
	}
	detail.Images = mapImages(images)

	completionImages, err := s.propertyRepo.GetPropertyImages(ctx, propertyId, common.ImageCompletion)
	if err != nil {
		return nil, err
	}
	detail.CompletionImages = mapImages(completionImages)

	return detail, nil
}

func (s *PropertyService) AdminReview(ctx context.Context, session *entity.Session, propertyId string, action string) (*entity.PropertyOutputModel, error) {
	if !session.IsAdmin() {
		return nil, ErrAdminOnly
	}

	property, err := s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}

		return nil, err
	}

	if !property.Status.CanAdminReview() {
		return nil, ErrPropertyNotPending
	}

	status, ok := workflow.AdminDecision(action, property.AssignedContractorId.Valid)
	if !ok {
		return nil, ErrInvalidReviewAction
	}

	if err = s.propertyRepo.SetAdminDecision(ctx, propertyId, status, session.UserId); err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrPropertyNotPending
		}

		return nil, err
	}

	property, err = s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		return nil, err
	}

	return mapProperty(property), nil
}

func (s *PropertyService) AssignContractor(ctx context.Context, session *entity.Session, propertyId string, contractorId string) (*entity.PropertyOutputModel, error) {
	if !session.IsAdmin() {
		return nil, ErrAdminOnly
	}

	property, err := s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}

		return nil, err
	}

	if !property.Status.CanAssignContractor() {
		return nil, ErrPropertyNotPending
	}

	contractor, err := s.contractorRepo.GetContractorById(ctx, contractorId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrContractorNotFound
		}

		return nil, err
	}

	if err = s.propertyRepo.AssignContractor(ctx, propertyId, contractor.Id); err != nil {
		return nil, err
	}

	if _, err = s.evaluationRepo.CreateEvaluationRequest(ctx, property.Id, contractor.Id); err != nil {
		return nil, err
	}

	property, err = s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		return nil, err
	}

	return mapProperty(property), nil
}

func (s *PropertyService) ContractorReview(ctx context.Context, session *entity.Session, propertyId string, rating float64, report string, action string) (*entity.PropertyOutputModel, error) {
	if !session.IsContractor() {
		return nil, ErrContractorOnly
	}

	if rating < common.MinRating || rating > common.MaxRating {
		return nil, ErrInvalidRating
	}
	if report == "" {
		return nil, ErrEmptyEvaluationReport
	}

	status, ok := workflow.EvaluationDecision(action)
	if !ok {
		return nil, ErrInvalidReviewAction
	}

	property, err := s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}

		return nil, err
	}

	if !session.ContractorId.Valid || !property.AssignedContractorId.Valid ||
		property.AssignedContractorId.UUID != session.ContractorId.UUID {
		return nil, ErrNotAssignedContractor
	}

	if !property.Status.CanEvaluate() {
		return nil, ErrPropertyNotEvaluable
	}

	if err = s.propertyRepo.SaveEvaluation(ctx, propertyId, status, rating, report); err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrPropertyNotEvaluable
		}

		return nil, err
	}

	if err = s.evaluationRepo.CompleteEvaluationRequest(ctx, propertyId, session.ContractorId.UUID); err != nil {
		return nil, err
	}

	property, err = s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		return nil, err
	}

	return mapProperty(property), nil
}

func (s *PropertyService) MarkCompleted(ctx context.Context, session *entity.Session, propertyId string, imageURLs []string, note string) (*entity.PropertyOutputModel, error) {
	if !session.IsContractor() {
		return nil, ErrContractorOnly
	}

	// proof of work needs at least one image, whatever state the
	// property is in
	if len(imageURLs) == 0 {
		return nil, ErrNoCompletionImages
	}

	property, err := s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}

		return nil, err
	}

	if !session.ContractorId.Valid || !property.AssignedContractorId.Valid ||
		property.AssignedContractorId.UUID != session.ContractorId.UUID {
		return nil, ErrNotAssignedContractor
	}

	if !property.Status.CanComplete() {
		return nil, ErrPropertyNotInProgress
	}

	if err = s.propertyRepo.SaveCompletion(ctx, propertyId, note, imageURLs); err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrPropertyNotInProgress
		}

		return nil, err
	}

	property, err = s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		return nil, err
	}

	return mapProperty(property), nil
}
