package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo/repo_errors"
	"renovation-marketplace-api/pkg/postgres"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	createUserSql, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("username", "email", "password_hash", "first_name", "last_name", "role", "phone", "national_id").
		Values(input.Username, input.Email, input.PasswordHash, input.FirstName, input.LastName, input.Role, input.Phone, input.NationalId).
		Suffix("RETURNING id").
		ToSql()

	var userId uuid.UUID
	err := r.Database.QueryRow(createUserSql, args...).Scan(&userId)
	if err != nil {
		return uuid.Nil, err
	}

	return userId, nil
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getUserSql, args, _ := r.SqlBuilder.
		Select("id", "username", "email", "password_hash", "first_name", "last_name", "role", "phone", "national_id", "registration_date").
		From("users").
		Where("id = ?", uuidForm).
		ToSql()

	return r.scanUser(r.Database.QueryRow(getUserSql, args...))
}

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select("id", "username", "email", "password_hash", "first_name", "last_name", "role", "phone", "national_id", "registration_date").
		From("users").
		Where("username = ?", username).
		ToSql()

	return r.scanUser(r.Database.QueryRow(getUserSql, args...))
}

func (r *UserRepo) scanUser(row *sql.Row) (*entity.User, error) {
	var user entity.User
	var registrationDate time.Time
	err := row.Scan(&user.Id, &user.Username, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.Role, &user.Phone, &user.NationalId, &registrationDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	user.RegistrationDate = registrationDate.Format(time.RFC3339)

	return &user, nil
}

func (r *UserRepo) DoesUsernameExist(ctx context.Context, username string) (bool, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select("id").
		From("users").
		Where("username = ?", username).
		ToSql()

	var id uuid.UUID
	err := r.Database.QueryRow(sqlReq, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *UserRepo) CreateSession(ctx context.Context, tokenId uuid.UUID, userId uuid.UUID) error {
	createSessionSql, args, _ := r.SqlBuilder.
		Insert("user_session").
		Columns("id", "user_id").
		Values(tokenId, userId).
		ToSql()

	_, err := r.Database.Exec(createSessionSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *UserRepo) RevokeSession(ctx context.Context, tokenId string) error {
	uuidForm, err := uuid.Parse(tokenId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	revokeSql, args, _ := r.SqlBuilder.
		Update("user_session").
		Set("revoked", true).
		Where("id = ?", uuidForm).
		Suffix("RETURNING id").
		ToSql()

	var id uuid.UUID
	err = r.Database.QueryRow(revokeSql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repo_errors.ErrNotFound
		}

		return err
	}

	return nil
}

func (r *UserRepo) IsSessionRevoked(ctx context.Context, tokenId string) (bool, error) {
	uuidForm, err := uuid.Parse(tokenId)
	if err != nil {
		return false, repo_errors.ErrNotFound
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select("revoked").
		From("user_session").
		Where("id = ?", uuidForm).
		ToSql()

	var revoked bool
	err = r.Database.QueryRow(sqlReq, args...).Scan(&revoked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, repo_errors.ErrNotFound
		}

		return false, err
	}

	return revoked, nil
}
