package repositories

import (
	"context"
	"database/sql"

	"lostfound/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

const itemWithOwnerColumns = `
	i.id, i.user_id, i.item_name, i.description, i.location, i.date_found,
	i.contact_details, i.additional_info, i.image_url, i.status,
	i.created_at, i.updated_at,
	u.id, u.email, u.full_name
`

func scanItemWithOwner(rows *sql.Rows) (models.Item, error) {
	var item models.Item
	var owner models.UserSummary
	err := rows.Scan(
		&item.ID, &item.UserID, &item.ItemName, &item.Description, &item.Location, &item.DateFound,
		&item.ContactDetails, &item.AdditionalInfo, &item.ImageURL, &item.Status,
		&item.CreatedAt, &item.UpdatedAt,
		&owner.ID, &owner.Email, &owner.FullName,
	)
	if err != nil {
		return models.Item{}, err
	}
	item.Owner = &owner
	return item, nil
}

func (r *ItemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	query := `
		SELECT ` + itemWithOwnerColumns + `
		FROM items i
		JOIN users u ON i.user_id = u.id
		ORDER BY i.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItemWithOwner(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) GetItemsByUserID(ctx context.Context, userID string) ([]models.Item, error) {
	query := `
		SELECT id, user_id, item_name, description, location, date_found,
		       contact_details, additional_info, image_url, status,
		       created_at, updated_at
		FROM items
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ItemName, &item.Description, &item.Location, &item.DateFound,
			&item.ContactDetails, &item.AdditionalInfo, &item.ImageURL, &item.Status,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) SearchItems(ctx context.Context, filter models.ItemSearchFilter) ([]models.Item, error) {
	where, args := buildItemSearchWhere(filter)
	query := `
		SELECT ` + itemWithOwnerColumns + `
		FROM items i
		JOIN users u ON i.user_id = u.id
	` + where + `
		ORDER BY i.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItemWithOwner(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id string) (models.Item, error) {
	query := `
		SELECT ` + itemWithOwnerColumns + `
		FROM items i
		JOIN users u ON i.user_id = u.id
		WHERE i.id = ?
	`
	var item models.Item
	var owner models.UserSummary
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.UserID, &item.ItemName, &item.Description, &item.Location, &item.DateFound,
		&item.ContactDetails, &item.AdditionalInfo, &item.ImageURL, &item.Status,
		&item.CreatedAt, &item.UpdatedAt,
		&owner.ID, &owner.Email, &owner.FullName,
	)
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	item.Owner = &owner
	return item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
		INSERT INTO items (id, user_id, item_name, description, location, date_found,
		                   contact_details, additional_info, image_url, status,
		                   created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		item.ID, item.UserID, item.ItemName, item.Description, item.Location, item.DateFound,
		item.ContactDetails, item.AdditionalInfo, item.ImageURL, item.Status,
	)
	if err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) UpdateItemStatus(ctx context.Context, id, status string) (models.Item, error) {
	query := `
		UPDATE items
		SET status = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, id)
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	return err
}
