package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renovation-marketplace-api/internal/common"
	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo"
	"renovation-marketplace-api/internal/repo/repo_errors"
	"renovation-marketplace-api/internal/workflow"
)

func adminSession() *entity.Session {
	return &entity.Session{UserId: uuid.New(), Role: common.RoleAdmin}
}

func homeownerSession() *entity.Session {
	return &entity.Session{UserId: uuid.New(), Role: common.RoleHomeowner}
}

func contractorSession(contractorId uuid.UUID) *entity.Session {
	return &entity.Session{
		UserId:       uuid.New(),
		ContractorId: uuid.NullUUID{UUID: contractorId, Valid: true},
		Role:         common.RoleContractor,
	}
}

func testProperty(status workflow.Status) *entity.Property {
	return &entity.Property{
		Id:           uuid.New(),
		HomeownerId:  uuid.New(),
		Title:        "Old house on Elm street",
		PropertyType: common.House,
		Condition:    common.ConditionPoor,
		Status:       status,
	}
}

func newPropertyService(propertyRepo *propertyRepoMock, contractorRepo *contractorRepoMock,
	userRepo *userRepoMock, evaluationRepo *evaluationRepoMock) *PropertyService {
	return NewPropertyService(&repo.Repositories{
		Property:   propertyRepo,
		Contractor: contractorRepo,
		User:       userRepo,
		Evaluation: evaluationRepo,
	})
}

func TestAdminReviewRequiresAdmin(t *testing.T) {
	s := newPropertyService(new(propertyRepoMock), new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.AdminReview(context.Background(), homeownerSession(), uuid.NewString(), common.ActionApprove)

	assert.ErrorIs(t, err, ErrAdminOnly)
}

func TestAdminReviewPropertyNotFound(t *testing.T) {
	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, mock.Anything).Return(nil, repo_errors.ErrNotFound)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.AdminReview(context.Background(), adminSession(), uuid.NewString(), common.ActionApprove)

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestAdminReviewApproveWithoutContractor(t *testing.T) {
	session := adminSession()
	pending := testProperty(workflow.Pending)
	approved := *pending
	approved.Status = workflow.Approved

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(pending, nil).Once()
	propertyRepo.On("SetAdminDecision", mock.Anything, pending.Id.String(), workflow.Approved, session.UserId).Return(nil)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(&approved, nil).Once()
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	out, err := s.AdminReview(context.Background(), session, pending.Id.String(), common.ActionApprove)

	require.NoError(t, err)
	assert.Equal(t, string(workflow.Approved), out.Status)
	propertyRepo.AssertExpectations(t)
}

func TestAdminReviewApproveWithContractorGoesToEvaluation(t *testing.T) {
	session := adminSession()
	pending := testProperty(workflow.Pending)
	pending.AssignedContractorId = uuid.NullUUID{UUID: uuid.New(), Valid: true}
	evaluating := *pending
	evaluating.Status = workflow.EvalPending

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(pending, nil).Once()
	propertyRepo.On("SetAdminDecision", mock.Anything, pending.Id.String(), workflow.EvalPending, session.UserId).Return(nil)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(&evaluating, nil).Once()
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	out, err := s.AdminReview(context.Background(), session, pending.Id.String(), common.ActionApprove)

	require.NoError(t, err)
	assert.Equal(t, string(workflow.EvalPending), out.Status)
}

func TestAdminReviewReject(t *testing.T) {
	session := adminSession()
	pending := testProperty(workflow.Pending)
	rejected := *pending
	rejected.Status = workflow.Rejected

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(pending, nil).Once()
	propertyRepo.On("SetAdminDecision", mock.Anything, pending.Id.String(), workflow.Rejected, session.UserId).Return(nil)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(&rejected, nil).Once()
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	out, err := s.AdminReview(context.Background(), session, pending.Id.String(), common.ActionReject)

	require.NoError(t, err)
	assert.Equal(t, string(workflow.Rejected), out.Status)
}

func TestAdminReviewFailsOnceDecided(t *testing.T) {
	for _, status := range []workflow.Status{workflow.Approved, workflow.Rejected, workflow.EvalPending,
		workflow.PriceProposed, workflow.InProgress, workflow.Completed} {
		property := testProperty(status)
		propertyRepo := new(propertyRepoMock)
		propertyRepo.On("GetPropertyById", mock.Anything, property.Id.String()).Return(property, nil)
		s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

		_, err := s.AdminReview(context.Background(), adminSession(), property.Id.String(), common.ActionReject)

		assert.ErrorIs(t, err, ErrPropertyNotPending, "status %s", status)
	}
}

func TestAdminReviewLosesRaceToEarlierDecision(t *testing.T) {
	// the property was still pending when read, but another admin
	// decided it before our update landed
	session := adminSession()
	pending := testProperty(workflow.Pending)

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(pending, nil)
	propertyRepo.On("SetAdminDecision", mock.Anything, pending.Id.String(), workflow.Approved, session.UserId).
		Return(repo_errors.ErrConflict)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.AdminReview(context.Background(), session, pending.Id.String(), common.ActionApprove)

	assert.ErrorIs(t, err, ErrPropertyNotPending)
}

func TestAdminReviewUnknownAction(t *testing.T) {
	property := testProperty(workflow.Pending)
	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, property.Id.String()).Return(property, nil)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.AdminReview(context.Background(), adminSession(), property.Id.String(), "postpone")

	assert.ErrorIs(t, err, ErrInvalidReviewAction)
}

func TestAssignContractor(t *testing.T) {
	session := adminSession()
	pending := testProperty(workflow.Pending)
	contractor := &entity.Contractor{Id: uuid.New(), UserId: uuid.New()}
	assigned := *pending
	assigned.AssignedContractorId = uuid.NullUUID{UUID: contractor.Id, Valid: true}

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(pending, nil).Once()
	propertyRepo.On("AssignContractor", mock.Anything, pending.Id.String(), contractor.Id).Return(nil)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(&assigned, nil).Once()

	contractorRepo := new(contractorRepoMock)
	contractorRepo.On("GetContractorById", mock.Anything, contractor.Id.String()).Return(contractor, nil)

	evaluationRepo := new(evaluationRepoMock)
	evaluationRepo.On("CreateEvaluationRequest", mock.Anything, pending.Id, contractor.Id).Return(uuid.New(), nil)

	s := newPropertyService(propertyRepo, contractorRepo, new(userRepoMock), evaluationRepo)

	out, err := s.AssignContractor(context.Background(), session, pending.Id.String(), contractor.Id.String())

	require.NoError(t, err)
	assert.Equal(t, contractor.Id.String(), out.AssignedContractorId)
	evaluationRepo.AssertExpectations(t)
}

func TestAssignContractorUnknownContractor(t *testing.T) {
	pending := testProperty(workflow.Pending)
	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, pending.Id.String()).Return(pending, nil)

	contractorRepo := new(contractorRepoMock)
	contractorRepo.On("GetContractorById", mock.Anything, mock.Anything).Return(nil, repo_errors.ErrNotFound)

	s := newPropertyService(propertyRepo, contractorRepo, new(userRepoMock), new(evaluationRepoMock))

	_, err := s.AssignContractor(context.Background(), adminSession(), pending.Id.String(), uuid.NewString())

	assert.ErrorIs(t, err, ErrContractorNotFound)
}

func TestAssignContractorRejectedProperty(t *testing.T) {
	rejected := testProperty(workflow.Rejected)
	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, rejected.Id.String()).Return(rejected, nil)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.AssignContractor(context.Background(), adminSession(), rejected.Id.String(), uuid.NewString())

	assert.ErrorIs(t, err, ErrPropertyNotPending)
}

func TestContractorReviewApprove(t *testing.T) {
	contractorId := uuid.New()
	session := contractorSession(contractorId)
	evaluating := testProperty(workflow.EvalPending)
	evaluating.AssignedContractorId = uuid.NullUUID{UUID: contractorId, Valid: true}
	approved := *evaluating
	approved.Status = workflow.Approved

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, evaluating.Id.String()).Return(evaluating, nil).Once()
	propertyRepo.On("SaveEvaluation", mock.Anything, evaluating.Id.String(), workflow.Approved, 4.0, "solid structure").Return(nil)
	propertyRepo.On("GetPropertyById", mock.Anything, evaluating.Id.String()).Return(&approved, nil).Once()

	evaluationRepo := new(evaluationRepoMock)
	evaluationRepo.On("CompleteEvaluationRequest", mock.Anything, evaluating.Id.String(), contractorId).Return(nil)

	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), evaluationRepo)

	out, err := s.ContractorReview(context.Background(), session, evaluating.Id.String(), 4, "solid structure", common.ActionApprove)

	require.NoError(t, err)
	assert.Equal(t, string(workflow.Approved), out.Status)
	evaluationRepo.AssertExpectations(t)
}

func TestContractorReviewValidation(t *testing.T) {
	s := newPropertyService(new(propertyRepoMock), new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))
	session := contractorSession(uuid.New())

	_, err := s.ContractorReview(context.Background(), session, uuid.NewString(), 0, "report", common.ActionApprove)
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = s.ContractorReview(context.Background(), session, uuid.NewString(), 6, "report", common.ActionApprove)
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = s.ContractorReview(context.Background(), session, uuid.NewString(), 3, "", common.ActionApprove)
	assert.ErrorIs(t, err, ErrEmptyEvaluationReport)

	_, err = s.ContractorReview(context.Background(), homeownerSession(), uuid.NewString(), 3, "report", common.ActionApprove)
	assert.ErrorIs(t, err, ErrContractorOnly)
}

func TestContractorReviewWrongContractor(t *testing.T) {
	evaluating := testProperty(workflow.EvalPending)
	evaluating.AssignedContractorId = uuid.NullUUID{UUID: uuid.New(), Valid: true}

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, evaluating.Id.String()).Return(evaluating, nil)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.ContractorReview(context.Background(), contractorSession(uuid.New()), evaluating.Id.String(), 3, "report", common.ActionApprove)

	assert.ErrorIs(t, err, ErrNotAssignedContractor)
}

func TestContractorReviewWrongState(t *testing.T) {
	contractorId := uuid.New()
	property := testProperty(workflow.Approved)
	property.AssignedContractorId = uuid.NullUUID{UUID: contractorId, Valid: true}

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, property.Id.String()).Return(property, nil)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.ContractorReview(context.Background(), contractorSession(contractorId), property.Id.String(), 3, "report", common.ActionApprove)

	assert.ErrorIs(t, err, ErrPropertyNotEvaluable)
}

func TestContractorReviewLosesRaceToEarlierDecision(t *testing.T) {
	contractorId := uuid.New()
	evaluating := testProperty(workflow.EvalPending)
	evaluating.AssignedContractorId = uuid.NullUUID{UUID: contractorId, Valid: true}

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, evaluating.Id.String()).Return(evaluating, nil)
	propertyRepo.On("SaveEvaluation", mock.Anything, evaluating.Id.String(), workflow.Approved, 3.0, "report").
		Return(repo_errors.ErrConflict)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.ContractorReview(context.Background(), contractorSession(contractorId), evaluating.Id.String(), 3, "report", common.ActionApprove)

	assert.ErrorIs(t, err, ErrPropertyNotEvaluable)
}

func TestMarkCompleted(t *testing.T) {
	contractorId := uuid.New()
	session := contractorSession(contractorId)
	inProgress := testProperty(workflow.InProgress)
	inProgress.AssignedContractorId = uuid.NullUUID{UUID: contractorId, Valid: true}
	completed := *inProgress
	completed.Status = workflow.Completed
	completed.CompletionNote = "all work areas renovated"

	images := []string{"https://img.example.com/after-1.jpg", "https://img.example.com/after-2.jpg"}

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, inProgress.Id.String()).Return(inProgress, nil).Once()
	propertyRepo.On("SaveCompletion", mock.Anything, inProgress.Id.String(), "all work areas renovated", images).Return(nil)
	propertyRepo.On("GetPropertyById", mock.Anything, inProgress.Id.String()).Return(&completed, nil).Once()

	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	out, err := s.MarkCompleted(context.Background(), session, inProgress.Id.String(), images, "all work areas renovated")

	require.NoError(t, err)
	assert.Equal(t, string(workflow.Completed), out.Status)
	propertyRepo.AssertExpectations(t)
}

func TestMarkCompletedWithoutImages(t *testing.T) {
	// fails before the property is even looked up
	s := newPropertyService(new(propertyRepoMock), new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.MarkCompleted(context.Background(), contractorSession(uuid.New()), uuid.NewString(), nil, "note")

	assert.ErrorIs(t, err, ErrNoCompletionImages)
}

func TestMarkCompletedWrongState(t *testing.T) {
	contractorId := uuid.New()
	property := testProperty(workflow.PriceProposed)
	property.AssignedContractorId = uuid.NullUUID{UUID: contractorId, Valid: true}

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, property.Id.String()).Return(property, nil)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.MarkCompleted(context.Background(), contractorSession(contractorId), property.Id.String(), []string{"a.jpg"}, "")

	assert.ErrorIs(t, err, ErrPropertyNotInProgress)
}

func TestMarkCompletedWrongContractor(t *testing.T) {
	property := testProperty(workflow.InProgress)
	property.AssignedContractorId = uuid.NullUUID{UUID: uuid.New(), Valid: true}

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, property.Id.String()).Return(property, nil)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.MarkCompleted(context.Background(), contractorSession(uuid.New()), property.Id.String(), []string{"a.jpg"}, "")

	assert.ErrorIs(t, err, ErrNotAssignedContractor)
}

func TestMarkCompletedLosesRaceToEarlierCompletion(t *testing.T) {
	contractorId := uuid.New()
	inProgress := testProperty(workflow.InProgress)
	inProgress.AssignedContractorId = uuid.NullUUID{UUID: contractorId, Valid: true}

	propertyRepo := new(propertyRepoMock)
	propertyRepo.On("GetPropertyById", mock.Anything, inProgress.Id.String()).Return(inProgress, nil)
	propertyRepo.On("SaveCompletion", mock.Anything, inProgress.Id.String(), "done", []string{"a.jpg"}).
		Return(repo_errors.ErrConflict)
	s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.MarkCompleted(context.Background(), contractorSession(contractorId), inProgress.Id.String(), []string{"a.jpg"}, "done")

	assert.ErrorIs(t, err, ErrPropertyNotInProgress)
}

func TestGetPropertiesUnknownStatus(t *testing.T) {
	s := newPropertyService(new(propertyRepoMock), new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

	_, err := s.GetProperties(context.Background(), adminSession(), "demolished", entity.NewPaginationInput(10, 0))

	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestGetPropertiesScopedByRole(t *testing.T) {
	pg := entity.NewPaginationInput(10, 0)

	t.Run("homeowner sees own properties", func(t *testing.T) {
		session := homeownerSession()
		propertyRepo := new(propertyRepoMock)
		propertyRepo.On("GetProperties", mock.Anything,
			&entity.PropertyFilter{HomeownerId: session.UserId.String()}, pg).Return([]entity.Property{}, nil)
		s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

		_, err := s.GetProperties(context.Background(), session, "", pg)

		require.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("contractor browses open listings by status", func(t *testing.T) {
		session := contractorSession(uuid.New())
		propertyRepo := new(propertyRepoMock)
		propertyRepo.On("GetProperties", mock.Anything,
			&entity.PropertyFilter{Status: workflow.Approved}, pg).Return([]entity.Property{}, nil)
		s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

		_, err := s.GetProperties(context.Background(), session, "approved", pg)

		require.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("contractor stays scoped for other status filters", func(t *testing.T) {
		session := contractorSession(uuid.New())
		propertyRepo := new(propertyRepoMock)
		propertyRepo.On("GetProperties", mock.Anything,
			&entity.PropertyFilter{
				Status:       workflow.Pending,
				ContractorId: session.ContractorId.UUID.String(),
			}, pg).Return([]entity.Property{}, nil)
		s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

		_, err := s.GetProperties(context.Background(), session, "pending", pg)

		require.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("contractor without filter sees assignments", func(t *testing.T) {
		session := contractorSession(uuid.New())
		propertyRepo := new(propertyRepoMock)
		propertyRepo.On("GetProperties", mock.Anything,
			&entity.PropertyFilter{ContractorId: session.ContractorId.UUID.String()}, pg).Return([]entity.Property{}, nil)
		s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

		_, err := s.GetProperties(context.Background(), session, "", pg)

		require.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		propertyRepo := new(propertyRepoMock)
		propertyRepo.On("GetProperties", mock.Anything, &entity.PropertyFilter{}, pg).Return([]entity.Property{}, nil)
		s := newPropertyService(propertyRepo, new(contractorRepoMock), new(userRepoMock), new(evaluationRepoMock))

		_, err := s.GetProperties(context.Background(), adminSession(), "", pg)

		require.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})
}
