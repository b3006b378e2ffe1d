package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"renovation-marketplace-api/internal/auth"
	"renovation-marketplace-api/internal/common"
	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo"
	"renovation-marketplace-api/internal/repo/repo_errors"
)

type AuthService struct {
	userRepo       repo.User
	contractorRepo repo.Contractor
	jwtSecret      string
	tokenTTL       time.Duration
}

func NewAuthService(repos *repo.Repositories, deps AuthDeps) *AuthService {
	return &AuthService{
		userRepo:       repos.User,
		contractorRepo: repos.Contractor,
		jwtSecret:      deps.JwtSecret,
		tokenTTL:       deps.TokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, input *entity.SignupInput) (*entity.AuthOutputModel, error) {
	if input.Role != common.RoleHomeowner && input.Role != common.RoleAdmin && input.Role != common.RoleContractor {
		return nil, ErrInvalidRole
	}

	taken, err := s.userRepo.DoesUsernameExist(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	userId, err := s.userRepo.CreateUser(ctx, &entity.CreateUserInput{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		Phone:        input.Phone,
		NationalId:   input.NationalId,
	})
	if err != nil {
		return nil, err
	}

	var contractorId uuid.NullUUID
	if input.Role == common.RoleContractor {
		id, err := s.contractorRepo.CreateContractor(ctx, &entity.CreateContractorInput{
			UserId:          userId,
			Specialization:  input.Specialization,
			ExperienceYears: input.ExperienceYears,
			LicenseNumber:   input.LicenseNumber,
		})
		if err != nil {
			return nil, err
		}
		contractorId = uuid.NullUUID{UUID: id, Valid: true}
	}

	return s.issueToken(ctx, userId, contractorId, input.Role)
}

func (s *AuthService) Login(ctx context.Context, username string, password string) (*entity.AuthOutputModel, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	var contractorId uuid.NullUUID
	if user.Role == common.RoleContractor {
		contractor, err := s.contractorRepo.GetContractorByUserId(ctx, user.Id.String())
		if err != nil {
			return nil, err
		}
		contractorId = uuid.NullUUID{UUID: contractor.Id, Valid: true}
	}

	return s.issueToken(ctx, user.Id, contractorId, user.Role)
}

func (s *AuthService) issueToken(ctx context.Context, userId uuid.UUID, contractorId uuid.NullUUID, role string) (*entity.AuthOutputModel, error) {
	session := &entity.Session{UserId: userId, ContractorId: contractorId, Role: role}

	tokenString, tokenId, err := auth.GenerateToken(session, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	if err = s.userRepo.CreateSession(ctx, tokenId, userId); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserById(ctx, userId.String())
	if err != nil {
		return nil, err
	}

	return &entity.AuthOutputModel{Token: tokenString, User: mapUser(user)}, nil
}

func (s *AuthService) Logout(ctx context.Context, session *entity.Session) error {
	if err := s.userRepo.RevokeSession(ctx, session.TokenId.String()); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrInvalidToken
		}

		return err
	}

	return nil
}

func (s *AuthService) ResolveSession(ctx context.Context, token string) (*entity.Session, error) {
	session, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}

	revoked, err := s.userRepo.IsSessionRevoked(ctx, session.TokenId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidToken
		}

		return nil, err
	}
	if revoked {
		return nil, ErrSessionRevoked
	}

	return session, nil
}
