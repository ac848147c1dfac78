package repository

import (
    "database/sql"
    "errors"
    "fmt"

    "github.com/jmoiron/sqlx"

    appErrors "github.com/piebomber/piebomber-api/internal/errors"
    "github.com/piebomber/piebomber-api/internal/model"
)

// MenuFilter carries the optional equality filters for menu listings.
// Filters are conjunctive when more than one is set.
type MenuFilter struct {
    Category  string
    Available *bool
}

type MenuRepositoryInterface interface {
    List(f MenuFilter) ([]model.MenuItem, error)
    GetByID(id int) (*model.MenuItem, error)
}

type MenuRepository struct {
    DB *sqlx.DB
}

const menuColumns = `id, name, description, category, price, image_url, available,
       ingredients, allergens, is_vegetarian, is_vegan, is_gluten_free,
       created_at, updated_at`

func (r *MenuRepository) List(f MenuFilter) ([]model.MenuItem, error) {
    query := `SELECT ` + menuColumns + ` FROM menu_items WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if f.Category != "" {
        query += fmt.Sprintf(" AND category=$%d", argPos)
        args = append(args, f.Category)
        argPos++
    }
    if f.Available != nil {
        query += fmt.Sprintf(" AND available=$%d", argPos)
        args = append(args, *f.Available)
    }

    items := []model.MenuItem{}
    if err := r.DB.Select(&items, query, args...); err != nil {
        return nil, err
    }
    return items, nil
}

func (r *MenuRepository) GetByID(id int) (*model.MenuItem, error) {
    query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id=$1`

    var item model.MenuItem
    if err := r.DB.Get(&item, query, id); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, appErrors.NewMenuItemNotFound(id)
        }
        return nil, err
    }
    return &item, nil
}

var _ MenuRepositoryInterface = (*MenuRepository)(nil)
