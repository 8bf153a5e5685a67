package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/guestara/menu-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

var subcategoryColumns = map[string]string{
	"categoryId":    "category_id",
	"name":          "name",
	"image":         "image",
	"description":   "description",
	"taxApplicable": "tax_applicable",
	"tax":           "tax",
	"updatedAt":     "updated_at",
}

func (r *PGRepository) Create(ctx context.Context, s *model.Subcategory) error {
	query := `
        INSERT INTO subcategories (id, category_id, name, image, description, tax_applicable, tax, created_at, updated_at)
        VALUES (:id, :category_id, :name, :image, :description, :tax_applicable, :tax, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Subcategory, error) {
	return r.findOne(ctx, `SELECT * FROM subcategories WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Subcategory, error) {
	return r.findOne(ctx, `SELECT * FROM subcategories WHERE name = $1 LIMIT 1`, name)
}

func (r *PGRepository) FindByCategoryAndName(ctx context.Context, categoryID, name string) (*model.Subcategory, error) {
	var s model.Subcategory
	query := `SELECT * FROM subcategories WHERE category_id = $1 AND name = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, categoryID, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Subcategory, error) {
	var s model.Subcategory
	err := r.DB.GetContext(ctx, &s, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Subcategory, error) {
	var subcategories []model.Subcategory
	query := `SELECT * FROM subcategories ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &subcategories, query); err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *PGRepository) FindByCategory(ctx context.Context, categoryID string) ([]model.Subcategory, error) {
	var subcategories []model.Subcategory
	query := `SELECT * FROM subcategories WHERE category_id = $1 ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &subcategories, query, categoryID); err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *PGRepository) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*model.Subcategory, error) {
	sets := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for k, v := range fields {
		col, ok := subcategoryColumns[k]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE subcategories SET %s WHERE id = $%d RETURNING *",
		strings.Join(sets, ", "), len(args),
	)

	var updated model.Subcategory
	err := r.DB.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}
