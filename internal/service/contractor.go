package service

import (
	"context"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo"
)

type ContractorService struct {
	contractorRepo repo.Contractor
	evaluationRepo repo.Evaluation
}

func NewContractorService(repos *repo.Repositories) *ContractorService {
	return &ContractorService{
		contractorRepo: repos.Contractor,
		evaluationRepo: repos.Evaluation,
	}
}

func (s *ContractorService) GetContractors(ctx context.Context, pg *entity.PaginationInput) ([]entity.ContractorOutputModel, error) {
	contractors, err := s.contractorRepo.GetContractors(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapContractors(contractors), nil
}

func (s *ContractorService) GetEvaluationRequests(ctx context.Context, session *entity.Session, pg *entity.PaginationInput) ([]entity.EvaluationRequestOutputModel, error) {
	if !session.IsContractor() || !session.ContractorId.Valid {
		return nil, ErrContractorOnly
	}

	requests, err := s.evaluationRepo.GetEvaluationRequestsByContractorId(ctx, session.ContractorId.UUID.String(), pg)
	if err != nil {
		return nil, err
	}

	return mapEvaluationRequests(requests), nil
}
