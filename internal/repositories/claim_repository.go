package repositories

import (
	"context"
	"database/sql"

	"lostfound/internal/lifecycle"
	"lostfound/internal/models"
)

type ClaimRepository struct {
	DB *sql.DB
}

// GetClaimsReceived returns claims on items owned by the given user, with
// the item and the claimant joined in, newest first.
func (r *ClaimRepository) GetClaimsReceived(ctx context.Context, ownerID string) ([]models.Claim, error) {
	query := `
		SELECT c.id, c.item_id, c.claimer_id, c.message, c.status, c.created_at, c.updated_at,
		       i.id, i.item_name, i.image_url, i.user_id,
		       u.id, u.email, u.full_name
		FROM claims c
		JOIN items i ON c.item_id = i.id
		JOIN users u ON c.claimer_id = u.id
		WHERE i.user_id = ?
		ORDER BY c.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := []models.Claim{}
	for rows.Next() {
		var claim models.Claim
		var item models.ItemSummary
		var claimer models.UserSummary
		err := rows.Scan(
			&claim.ID, &claim.ItemID, &claim.ClaimerID, &claim.Message, &claim.Status, &claim.CreatedAt, &claim.UpdatedAt,
			&item.ID, &item.ItemName, &item.ImageURL, &item.UserID,
			&claimer.ID, &claimer.Email, &claimer.FullName,
		)
		if err != nil {
			return nil, err
		}
		claim.Item = &item
		claim.Claimer = &claimer
		claims = append(claims, claim)
	}
	return claims, rows.Err()
}

// GetClaimsSent returns claims created by the given user, with the item
// joined in, newest first.
func (r *ClaimRepository) GetClaimsSent(ctx context.Context, claimerID string) ([]models.Claim, error) {
	query := `
		SELECT c.id, c.item_id, c.claimer_id, c.message, c.status, c.created_at, c.updated_at,
		       i.id, i.item_name, i.image_url, i.location
		FROM claims c
		JOIN items i ON c.item_id = i.id
		WHERE c.claimer_id = ?
		ORDER BY c.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, claimerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := []models.Claim{}
	for rows.Next() {
		var claim models.Claim
		var item models.ItemSummary
		err := rows.Scan(
			&claim.ID, &claim.ItemID, &claim.ClaimerID, &claim.Message, &claim.Status, &claim.CreatedAt, &claim.UpdatedAt,
			&item.ID, &item.ItemName, &item.ImageURL, &item.Location,
		)
		if err != nil {
			return nil, err
		}
		claim.Item = &item
		claims = append(claims, claim)
	}
	return claims, rows.Err()
}

func (r *ClaimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	query := `
		INSERT INTO claims (id, item_id, claimer_id, message, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		claim.ID, claim.ItemID, claim.ClaimerID, claim.Message, claim.Status,
	)
	if err != nil {
		return models.Claim{}, err
	}
	return r.GetClaimByID(ctx, claim.ID)
}

// GetClaimByID returns the claim with the owning item joined in, so callers
// can authorize against the item owner.
func (r *ClaimRepository) GetClaimByID(ctx context.Context, id string) (models.Claim, error) {
	query := `
		SELECT c.id, c.item_id, c.claimer_id, c.message, c.status, c.created_at, c.updated_at,
		       i.id, i.item_name, i.image_url, i.user_id
		FROM claims c
		JOIN items i ON c.item_id = i.id
		WHERE c.id = ?
	`
	var claim models.Claim
	var item models.ItemSummary
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&claim.ID, &claim.ItemID, &claim.ClaimerID, &claim.Message, &claim.Status, &claim.CreatedAt, &claim.UpdatedAt,
		&item.ID, &item.ItemName, &item.ImageURL, &item.UserID,
	)
	if err == sql.ErrNoRows {
		return models.Claim{}, models.ErrClaimNotFound
	}
	if err != nil {
		return models.Claim{}, err
	}
	claim.Item = &item
	return claim, nil
}

// UpdateClaimStatus persists the new claim status. Approval also moves the
// referenced item to "claimed"; both writes commit in one transaction so
// the cascade cannot be observed half-applied.
func (r *ClaimRepository) UpdateClaimStatus(ctx context.Context, id, itemID, status string) (models.Claim, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Claim{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `UPDATE claims SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return models.Claim{}, err
	}

	if status == lifecycle.ClaimApproved {
		_, err = tx.ExecContext(ctx, `UPDATE items SET status = ?, updated_at = NOW() WHERE id = ?`,
			lifecycle.ItemClaimed, itemID)
		if err != nil {
			return models.Claim{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Claim{}, err
	}
	return r.GetClaimByID(ctx, id)
}
