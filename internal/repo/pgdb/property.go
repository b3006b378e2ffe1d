package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/repo/repo_errors"
	"renovation-marketplace-api/internal/workflow"
	"renovation-marketplace-api/pkg/postgres"
)

type PropertyRepo struct {
	*postgres.Postgres
}

func NewPropertyRepo(pgdb *postgres.Postgres) *PropertyRepo {
	return &PropertyRepo{pgdb}
}

var propertyColumns = []string{
	"property.created_at", "property.id", "property.homeowner_id", "property.title", "property.description",
	"property.address", "property.city", "property.latitude", "property.longitude", "property.plot_number",
	"property.property_type", "property.size", "property.number_of_floors", "property.number_of_rooms",
	"property.condition", "property.work_areas", "property.work_details", "property.status",
	"property.assigned_contractor_id", "property.admin_approver_id", "property.rating",
	"property.evaluation_report", "property.evaluation_date", "property.completion_note",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*entity.Property, error) {
	var property entity.Property
	var createdAt time.Time
	err := row.Scan(&createdAt, &property.Id, &property.HomeownerId, &property.Title, &property.Description,
		&property.Address, &property.City, &property.Latitude, &property.Longitude, &property.PlotNumber,
		&property.PropertyType, &property.Size, &property.NumberOfFloors, &property.NumberOfRooms,
		&property.Condition, pq.Array(&property.WorkAreas), &property.WorkDetails, &property.Status,
		&property.AssignedContractorId, &property.AdminApproverId, &property.Rating,
		&property.EvaluationReport, &property.EvaluationDate, &property.CompletionNote)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	property.CreatedAt = createdAt.Format(time.RFC3339)

	return &property, nil
}

func (r *PropertyRepo) CreateProperty(ctx context.Context, input *entity.CreatePropertyInput) (uuid.UUID, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	createPropertySql, args, _ := r.SqlBuilder.
		Insert("property").
		Columns("homeowner_id", "title", "description", "address", "city", "latitude", "longitude",
			"plot_number", "property_type", "size", "number_of_floors", "number_of_rooms",
			"condition", "work_areas", "work_details", "status").
		Values(input.HomeownerId, input.Title, input.Description, input.Address, input.City,
			input.Latitude, input.Longitude, input.PlotNumber, input.PropertyType, input.Size,
			input.NumberOfFloors, input.NumberOfRooms, input.Condition, pq.Array(input.WorkAreas),
			input.WorkDetails, workflow.Pending).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var propertyId uuid.UUID
	err = tx.QueryRow(createPropertySql, args...).Scan(&propertyId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	for i, url := range input.ImageURLs {
		createImageSql, args, _ := r.SqlBuilder.
			Insert("property_image").
			Columns("property_id", "url", "is_thumbnail", "ord", "kind").
			Values(propertyId, url, i == 0, i, "gallery").
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(createImageSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return uuid.Nil, e
			}

			return uuid.Nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return propertyId, nil
}

func (r *PropertyRepo) GetPropertyById(ctx context.Context, id string) (*entity.Property, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getPropertySql, args, _ := r.SqlBuilder.
		Select(propertyColumns...).
		From("property").
		Where("property.id = ?", uuidForm).
		ToSql()

	return scanProperty(r.Database.QueryRow(getPropertySql, args...))
}

func (r *PropertyRepo) GetProperties(ctx context.Context, filter *entity.PropertyFilter, pg *entity.PaginationInput) ([]entity.Property, error) {
	builder := r.SqlBuilder.
		Select(propertyColumns...).
		From("property")

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.HomeownerId != "" {
		builder = builder.Where(squirrel.Eq{"homeowner_id": filter.HomeownerId})
	}
	if filter.ContractorId != "" {
		builder = builder.Where(squirrel.Eq{"assigned_contractor_id": filter.ContractorId})
	}

	sqlReq, args, _ := builder.
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := make([]entity.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return properties, err
		}
		properties = append(properties, *property)
	}
	if err = rows.Err(); err != nil {
		return properties, err
	}

	return properties, nil
}

func (r *PropertyRepo) GetPropertyImages(ctx context.Context, propertyId string, kind string) ([]entity.PropertyImage, error) {
	uuidForm, err := uuid.Parse(propertyId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select("id", "property_id", "url", "is_thumbnail", "ord", "kind").
		From("property_image").
		Where("property_id = ?", uuidForm).
		Where("kind = ?", kind).
		OrderBy("ord ASC").
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]entity.PropertyImage, 0)
	for rows.Next() {
		var image entity.PropertyImage
		if err := rows.Scan(&image.Id, &image.PropertyId, &image.URL, &image.IsThumbnail, &image.Order, &image.Kind); err != nil {
			return images, err
		}
		images = append(images, image)
	}
	if err = rows.Err(); err != nil {
		return images, err
	}

	return images, nil
}

func (r *PropertyRepo) SetAdminDecision(ctx context.Context, propertyId string, status workflow.Status, approverId uuid.UUID) error {
	uuidForm, err := uuid.Parse(propertyId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	builder := r.SqlBuilder.
		Update("property").
		Set("status", status)
	// the approver is recorded only when the property passes review
	if status != workflow.Rejected {
		builder = builder.Set("admin_approver_id", approverId)
	}

	updateSql, args, _ := builder.
		Where("id = ?", uuidForm).
		Where("status = ?", workflow.Pending).
		ToSql()

	return r.execGuarded(updateSql, args)
}

// execGuarded runs a state-guarded update and reports a conflict when
// the row already left the guarded state.
func (r *PropertyRepo) execGuarded(updateSql string, args []interface{}) error {
	res, err := r.Database.Exec(updateSql, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repo_errors.ErrConflict
	}

	return nil
}

func (r *PropertyRepo) AssignContractor(ctx context.Context, propertyId string, contractorId uuid.UUID) error {
	uuidForm, err := uuid.Parse(propertyId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("property").
		Set("assigned_contractor_id", contractorId).
		Where("id = ?", uuidForm).
		ToSql()

	_, err = r.Database.Exec(updateSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *PropertyRepo) SaveEvaluation(ctx context.Context, propertyId string, status workflow.Status, rating float64, report string) error {
	uuidForm, err := uuid.Parse(propertyId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("property").
		Set("status", status).
		Set("rating", rating).
		Set("evaluation_report", report).
		Set("evaluation_date", squirrel.Expr("now()")).
		Where("id = ?", uuidForm).
		Where("status = ?", workflow.EvalPending).
		ToSql()

	return r.execGuarded(updateSql, args)
}

func (r *PropertyRepo) SaveCompletion(ctx context.Context, propertyId string, note string, imageURLs []string) error {
	uuidForm, err := uuid.Parse(propertyId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("property").
		Set("status", workflow.Completed).
		Set("completion_note", note).
		Where("id = ?", uuidForm).
		Where("status = ?", workflow.InProgress).
		RunWith(tx).
		ToSql()

	res, err := tx.Exec(updateSql, args...)
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

	for i, url := range imageURLs {
		createImageSql, args, _ := r.SqlBuilder.
			Insert("property_image").
			Columns("property_id", "url", "is_thumbnail", "ord", "kind").
			Values(uuidForm, url, false, i, "completion").
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(createImageSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}

			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}
