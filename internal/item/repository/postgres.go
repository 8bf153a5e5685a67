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

var itemColumns = map[string]string{
	"categoryId":    "category_id",
	"subcategoryId": "subcategory_id",
	"name":          "name",
	"image":         "image",
	"description":   "description",
	"taxApplicable": "tax_applicable",
	"tax":           "tax",
	"baseAmount":    "base_amount",
	"discount":      "discount",
	"totalAmount":   "total_amount",
	"updatedAt":     "updated_at",
}

func (r *PGRepository) Create(ctx context.Context, it *model.Item) error {
	query := `
        INSERT INTO items (id, category_id, subcategory_id, name, image, description,
            tax_applicable, tax, base_amount, discount, total_amount, created_at, updated_at)
        VALUES (:id, :category_id, :subcategory_id, :name, :image, :description,
            :tax_applicable, :tax, :base_amount, :discount, :total_amount, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, it)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	return r.findOne(ctx, `SELECT * FROM items WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Item, error) {
	return r.findOne(ctx, `SELECT * FROM items WHERE name = $1 LIMIT 1`, name)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Item, error) {
	var it model.Item
	err := r.DB.GetContext(ctx, &it, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	return r.findMany(ctx, `SELECT * FROM items ORDER BY created_at DESC`)
}

func (r *PGRepository) FindByCategory(ctx context.Context, categoryID string) ([]model.Item, error) {
	return r.findMany(ctx, `SELECT * FROM items WHERE category_id = $1 ORDER BY created_at DESC`, categoryID)
}

func (r *PGRepository) FindBySubcategory(ctx context.Context, subcategoryID string) ([]model.Item, error) {
	return r.findMany(ctx, `SELECT * FROM items WHERE subcategory_id = $1 ORDER BY created_at DESC`, subcategoryID)
}

func (r *PGRepository) SearchByName(ctx context.Context, name string) ([]model.Item, error) {
	pattern := "%" + escapeLike(name) + "%"
	return r.findMany(ctx, `SELECT * FROM items WHERE name ILIKE $1 ORDER BY created_at DESC`, pattern)
}

func (r *PGRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]model.Item, error) {
	var items []model.Item
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*model.Item, error) {
	sets := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for k, v := range fields {
		col, ok := itemColumns[k]
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
		"UPDATE items SET %s WHERE id = $%d RETURNING *",
		strings.Join(sets, ", "), len(args),
	)

	var updated model.Item
	err := r.DB.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
