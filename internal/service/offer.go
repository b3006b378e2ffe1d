package service

import (
	"context"
	"errors"

	"renovation-marketplace-api/internal/common"
	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo"
	"renovation-marketplace-api/internal/repo/repo_errors"
)

type OfferService struct {
	offerRepo    repo.Offer
	propertyRepo repo.Property
}

func NewOfferService(repos *repo.Repositories) *OfferService {
	return &OfferService{
		offerRepo:    repos.Offer,
		propertyRepo: repos.Property,
	}
}

func (s *OfferService) SubmitOffer(ctx context.Context, session *entity.Session, propertyId string, amount float64, description string) (*entity.PriceOfferOutputModel, error) {
	if !session.IsContractor() || !session.ContractorId.Valid {
		return nil, ErrContractorOnly
	}

	// rejected up front, whatever state the property is in
	if amount <= 0 {
		return nil, ErrInvalidOfferAmount
	}

	property, err := s.propertyRepo.GetPropertyById(ctx, propertyId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}

		return nil, err
	}

	if !property.Status.CanReceiveOffer() {
		return nil, ErrPropertyNotListed
	}

	input := &entity.CreateOfferInput{
		PropertyId:   propertyId,
		ContractorId: session.ContractorId.UUID,
		Amount:       amount,
		Description:  description,
	}

	id, err := s.offerRepo.CreateOffer(ctx, input)
	if err != nil {
		return nil, err
	}

	offer, err := s.offerRepo.GetOfferById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapOffer(offer), nil
}

// Offer listings are role-scoped: contractors see the offers they made,
// homeowners the offers on their properties, admins everything.
func (s *OfferService) GetOffers(ctx context.Context, session *entity.Session, pg *entity.PaginationInput) ([]entity.PriceOfferOutputModel, error) {
	var offers []entity.PriceOffer
	var err error

	switch {
	case session.IsAdmin():
		offers, err = s.offerRepo.GetAllOffers(ctx, pg)
	case session.IsContractor() && session.ContractorId.Valid:
		offers, err = s.offerRepo.GetOffersByContractorId(ctx, session.ContractorId.UUID.String(), pg)
	default:
		offers, err = s.offerRepo.GetOffersByHomeownerId(ctx, session.UserId.String(), pg)
	}
	if err != nil {
		return nil, err
	}

	return mapOffers(offers), nil
}

func (s *OfferService) AcceptOffer(ctx context.Context, session *entity.Session, offerId string) (*entity.PriceOfferOutputModel, error) {
	offer, property, err := s.getOfferForDecision(ctx, session, offerId)
	if err != nil {
		return nil, err
	}

	if !property.Status.CanDecideOffer() {
		return nil, ErrNoOpenPriceProposal
	}

	if err = s.offerRepo.AcceptOffer(ctx, offer); err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrOfferAlreadyDecided
		}

		return nil, err
	}

	offer, err = s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		return nil, err
	}

	return mapOffer(offer), nil
}

func (s *OfferService) RejectOffer(ctx context.Context, session *entity.Session, offerId string) (*entity.PriceOfferOutputModel, error) {
	offer, _, err := s.getOfferForDecision(ctx, session, offerId)
	if err != nil {
		return nil, err
	}

	if err = s.offerRepo.RejectOffer(ctx, offer); err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrOfferAlreadyDecided
		}

		return nil, err
	}

	offer, err = s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		return nil, err
	}

	return mapOffer(offer), nil
}

func (s *OfferService) getOfferForDecision(ctx context.Context, session *entity.Session, offerId string) (*entity.PriceOffer, *entity.Property, error) {
	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, ErrOfferNotFound
		}

		return nil, nil, err
	}

	property, err := s.propertyRepo.GetPropertyById(ctx, offer.PropertyId.String())
	if err != nil {
		return nil, nil, err
	}

	if property.HomeownerId != session.UserId {
		return nil, nil, ErrNotPropertyOwner
	}

	if offer.Status != common.OfferPending {
		return nil, nil, ErrOfferAlreadyDecided
	}

	return offer, property, nil
}
