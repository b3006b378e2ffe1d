package pgdb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo/repo_errors"
	"renovation-marketplace-api/pkg/postgres"
)

type EvaluationRepo struct {
	*postgres.Postgres
}

func NewEvaluationRepo(pgdb *postgres.Postgres) *EvaluationRepo {
	return &EvaluationRepo{pgdb}
}

func (r *EvaluationRepo) CreateEvaluationRequest(ctx context.Context, propertyId uuid.UUID, contractorId uuid.UUID) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("evaluation_request").
		Columns("property_id", "contractor_id").
		Values(propertyId, contractorId).
		Suffix("RETURNING id").
		ToSql()

	var requestId uuid.UUID
	err := r.Database.QueryRow(createSql, args...).Scan(&requestId)
	if err != nil {
		return uuid.Nil, err
	}

	return requestId, nil
}

func (r *EvaluationRepo) GetEvaluationRequestsByContractorId(ctx context.Context, contractorId string, pg *entity.PaginationInput) ([]entity.EvaluationRequest, error) {
	uuidForm, err := uuid.Parse(contractorId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select("id", "property_id", "contractor_id", "assigned_at", "completed").
		From("evaluation_request").
		Where("contractor_id = ?", uuidForm).
		OrderBy("assigned_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entity.EvaluationRequest, 0)
	for rows.Next() {
		var request entity.EvaluationRequest
		var assignedAt time.Time
		if err := rows.Scan(&request.Id, &request.PropertyId, &request.ContractorId, &assignedAt, &request.Completed); err != nil {
			return requests, err
		}
		request.AssignedAt = assignedAt.Format(time.RFC3339)
		requests = append(requests, request)
	}
	if err = rows.Err(); err != nil {
		return requests, err
	}

	return requests, nil
}

func (r *EvaluationRepo) CompleteEvaluationRequest(ctx context.Context, propertyId string, contractorId uuid.UUID) error {
	uuidForm, err := uuid.Parse(propertyId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("evaluation_request").
		Set("completed", true).
		Where("property_id = ?", uuidForm).
		Where("contractor_id = ?", contractorId).
		ToSql()

	_, err = r.Database.Exec(updateSql, args...)
	if err != nil {
		return err
	}

	return nil
}
