package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"renovation-marketplace-api/internal/common"
	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo/repo_errors"
	"renovation-marketplace-api/internal/workflow"
	"renovation-marketplace-api/pkg/postgres"
)

type OfferRepo struct {
	*postgres.Postgres
}

func NewOfferRepo(pgdb *postgres.Postgres) *OfferRepo {
	return &OfferRepo{pgdb}
}

const offerColumns = "price_offer.proposed_at, price_offer.id, price_offer.property_id, property.title, " +
	"price_offer.contractor_id, price_offer.amount, price_offer.description, price_offer.status"

func scanOffer(row rowScanner) (*entity.PriceOffer, error) {
	var offer entity.PriceOffer
	var proposedAt time.Time
	err := row.Scan(&proposedAt, &offer.Id, &offer.PropertyId, &offer.PropertyTitle,
		&offer.ContractorId, &offer.Amount, &offer.Description, &offer.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	offer.ProposedAt = proposedAt.Format(time.RFC3339)

	return &offer, nil
}

func (r *OfferRepo) CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (uuid.UUID, error) {
	propertyUuid, err := uuid.Parse(input.PropertyId)
	if err != nil {
		return uuid.Nil, repo_errors.ErrNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	createOfferSql, args, _ := r.SqlBuilder.
		Insert("price_offer").
		Columns("property_id", "contractor_id", "amount", "description", "status").
		Values(propertyUuid, input.ContractorId, input.Amount, input.Description, common.OfferPending).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var offerId uuid.UUID
	err = tx.QueryRow(createOfferSql, args...).Scan(&offerId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	// the first offer flips the listing to price_proposed; later offers
	// find it already flipped and this update matches no row
	flipStatusSql, args, _ := r.SqlBuilder.
		Update("property").
		Set("status", workflow.PriceProposed).
		Where("id = ?", propertyUuid).
		Where("status = ?", workflow.Approved).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(flipStatusSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return offerId, nil
}

func (r *OfferRepo) GetOfferById(ctx context.Context, id string) (*entity.PriceOffer, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getOfferSql, args, _ := r.SqlBuilder.
		Select(offerColumns).
		From("price_offer").
		InnerJoin("property on property.id = price_offer.property_id").
		Where("price_offer.id = ?", uuidForm).
		ToSql()

	return scanOffer(r.Database.QueryRow(getOfferSql, args...))
}

func (r *OfferRepo) GetOffersByContractorId(ctx context.Context, contractorId string, pg *entity.PaginationInput) ([]entity.PriceOffer, error) {
	uuidForm, err := uuid.Parse(contractorId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select(offerColumns).
		From("price_offer").
		InnerJoin("property on property.id = price_offer.property_id").
		Where("price_offer.contractor_id = ?", uuidForm).
		OrderBy("price_offer.proposed_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryOffers(sqlReq, args)
}

func (r *OfferRepo) GetOffersByHomeownerId(ctx context.Context, homeownerId string, pg *entity.PaginationInput) ([]entity.PriceOffer, error) {
	uuidForm, err := uuid.Parse(homeownerId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select(offerColumns).
		From("price_offer").
		InnerJoin("property on property.id = price_offer.property_id").
		Where("property.homeowner_id = ?", uuidForm).
		OrderBy("price_offer.proposed_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryOffers(sqlReq, args)
}

func (r *OfferRepo) GetAllOffers(ctx context.Context, pg *entity.PaginationInput) ([]entity.PriceOffer, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(offerColumns).
		From("price_offer").
		InnerJoin("property on property.id = price_offer.property_id").
		OrderBy("price_offer.proposed_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryOffers(sqlReq, args)
}

func (r *OfferRepo) queryOffers(sqlReq string, args []interface{}) ([]entity.PriceOffer, error) {
	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]entity.PriceOffer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return offers, err
		}
		offers = append(offers, *offer)
	}
	if err = rows.Err(); err != nil {
		return offers, err
	}

	return offers, nil
}

func (r *OfferRepo) AcceptOffer(ctx context.Context, offer *entity.PriceOffer) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// the pending guard makes concurrent decisions on the same offer
	// serialize: the loser matches no row and reports a conflict
	acceptSql, args, _ := r.SqlBuilder.
		Update("price_offer").
		Set("status", common.OfferAccepted).
		Where("id = ?", offer.Id).
		Where("status = ?", common.OfferPending).
		RunWith(tx).
		ToSql()

	res, err := tx.Exec(acceptSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		if e := tx.Rollback(); e != nil {
			return e
		}
		if err != nil {
			return err
		}

		return repo_errors.ErrConflict
	}

	rejectCompetingSql, args, _ := r.SqlBuilder.
		Update("price_offer").
		Set("status", common.OfferRejected).
		Where("property_id = ?", offer.PropertyId).
		Where("status = ?", common.OfferPending).
		Where("id <> ?", offer.Id).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(rejectCompetingSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	startWorkSql, args, _ := r.SqlBuilder.
		Update("property").
		Set("status", workflow.InProgress).
		Set("assigned_contractor_id", offer.ContractorId).
		Where("id = ?", offer.PropertyId).
		Where("status = ?", workflow.PriceProposed).
		RunWith(tx).
		ToSql()

	res, err = tx.Exec(startWorkSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		if e := tx.Rollback(); e != nil {
			return e
		}
		if err != nil {
			return err
		}

		return repo_errors.ErrConflict
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *OfferRepo) RejectOffer(ctx context.Context, offer *entity.PriceOffer) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	rejectSql, args, _ := r.SqlBuilder.
		Update("price_offer").
		Set("status", common.OfferRejected).
		Where("id = ?", offer.Id).
		Where("status = ?", common.OfferPending).
		RunWith(tx).
		ToSql()

	res, err := tx.Exec(rejectSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		if e := tx.Rollback(); e != nil {
			return e
		}
		if err != nil {
			return err
		}

		return repo_errors.ErrConflict
	}

	// reopen the listing only when this was the last pending offer
	reopenSql, args, _ := r.SqlBuilder.
		Update("property").
		Set("status", workflow.Approved).
		Where("id = ?", offer.PropertyId).
		Where("status = ?", workflow.PriceProposed).
		Where("not exists (select 1 from price_offer where property_id = ? and status = ?)",
			offer.PropertyId, common.OfferPending).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(reopenSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}
