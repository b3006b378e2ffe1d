package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo/repo_errors"
	"renovation-marketplace-api/pkg/postgres"
)

type ContractorRepo struct {
	*postgres.Postgres
}

func NewContractorRepo(pgdb *postgres.Postgres) *ContractorRepo {
	return &ContractorRepo{pgdb}
}

func (r *ContractorRepo) CreateContractor(ctx context.Context, input *entity.CreateContractorInput) (uuid.UUID, error) {
	createContractorSql, args, _ := r.SqlBuilder.
		Insert("contractor").
		Columns("user_id", "specialization", "experience_years", "license_number").
		Values(input.UserId, input.Specialization, input.ExperienceYears, input.LicenseNumber).
		Suffix("RETURNING id").
		ToSql()

	var contractorId uuid.UUID
	err := r.Database.QueryRow(createContractorSql, args...).Scan(&contractorId)
	if err != nil {
		return uuid.Nil, err
	}

	return contractorId, nil
}

func (r *ContractorRepo) GetContractorById(ctx context.Context, id string) (*entity.Contractor, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getContractorSql, args, _ := r.SqlBuilder.
		Select("contractor.id", "contractor.user_id", "users.first_name", "users.last_name",
			"contractor.specialization", "contractor.experience_years", "contractor.license_number").
		From("contractor").
		InnerJoin("users on users.id = contractor.user_id").
		Where("contractor.id = ?", uuidForm).
		ToSql()

	return r.scanContractor(r.Database.QueryRow(getContractorSql, args...))
}

func (r *ContractorRepo) GetContractorByUserId(ctx context.Context, userId string) (*entity.Contractor, error) {
	uuidForm, err := uuid.Parse(userId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getContractorSql, args, _ := r.SqlBuilder.
		Select("contractor.id", "contractor.user_id", "users.first_name", "users.last_name",
			"contractor.specialization", "contractor.experience_years", "contractor.license_number").
		From("contractor").
		InnerJoin("users on users.id = contractor.user_id").
		Where("contractor.user_id = ?", uuidForm).
		ToSql()

	return r.scanContractor(r.Database.QueryRow(getContractorSql, args...))
}

func (r *ContractorRepo) scanContractor(row *sql.Row) (*entity.Contractor, error) {
	var contractor entity.Contractor
	err := row.Scan(&contractor.Id, &contractor.UserId, &contractor.FirstName, &contractor.LastName,
		&contractor.Specialization, &contractor.ExperienceYears, &contractor.LicenseNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &contractor, nil
}

func (r *ContractorRepo) GetContractors(ctx context.Context, pg *entity.PaginationInput) ([]entity.Contractor, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select("contractor.id", "contractor.user_id", "users.first_name", "users.last_name",
			"contractor.specialization", "contractor.experience_years", "contractor.license_number").
		From("contractor").
		InnerJoin("users on users.id = contractor.user_id").
		OrderBy("users.last_name ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contractors := make([]entity.Contractor, 0)
	for rows.Next() {
		var contractor entity.Contractor
		if err := rows.Scan(&contractor.Id, &contractor.UserId, &contractor.FirstName, &contractor.LastName,
			&contractor.Specialization, &contractor.ExperienceYears, &contractor.LicenseNumber); err != nil {
			return contractors, err
		}
		contractors = append(contractors, contractor)
	}
	if err = rows.Err(); err != nil {
		return contractors, err
	}

	return contractors, nil
}
