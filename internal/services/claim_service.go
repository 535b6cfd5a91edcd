package services

import (
	"context"

	"github.com/google/uuid"

	"lostfound/internal/lifecycle"
	"lostfound/internal/models"
)

// ClaimStore is the repository surface the claim service depends on.
type ClaimStore interface {
	GetClaimsReceived(ctx context.Context, ownerID string) ([]models.Claim, error)
	GetClaimsSent(ctx context.Context, claimerID string) ([]models.Claim, error)
	CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error)
	GetClaimByID(ctx context.Context, id string) (models.Claim, error)
	UpdateClaimStatus(ctx context.Context, id, itemID, status string) (models.Claim, error)
}

// ItemGetter is the slice of the item repository claims need for target
// lookup and ownership checks.
type ItemGetter interface {
	GetItemByID(ctx context.Context, id string) (models.Item, error)
}

// ClaimNotifier delivers a best-effort push notification to the item owner
// when a new claim arrives. Implementations must not fail the request.
type ClaimNotifier interface {
	ClaimReceived(ctx context.Context, ownerID, itemName, claimantName string)
}

type ClaimService struct {
	ClaimRepo ClaimStore
	ItemRepo  ItemGetter
	Notifier  ClaimNotifier
}

func (s *ClaimService) GetClaimsReceived(ctx context.Context, ownerID string) ([]models.Claim, error) {
	return s.ClaimRepo.GetClaimsReceived(ctx, ownerID)
}

func (s *ClaimService) GetClaimsSent(ctx context.Context, claimerID string) ([]models.Claim, error) {
	return s.ClaimRepo.GetClaimsSent(ctx, claimerID)
}

// CreateClaim files a claim against an existing item. Owners cannot claim
// their own items; the status always starts as "pending".
func (s *ClaimService) CreateClaim(ctx context.Context, itemID, claimerID, claimerName, message string) (models.Claim, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Claim{}, err
	}
	if item.UserID == claimerID {
		return models.Claim{}, models.ErrSelfClaim
	}

	claim := models.Claim{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		ClaimerID: claimerID,
		Message:   message,
		Status:    lifecycle.ClaimPending,
	}
	created, err := s.ClaimRepo.CreateClaim(ctx, claim)
	if err != nil {
		return models.Claim{}, err
	}

	if s.Notifier != nil {
		s.Notifier.ClaimReceived(ctx, item.UserID, item.ItemName, claimerName)
	}
	return created, nil
}

// UpdateClaimStatus is restricted to the owner of the claimed item, not the
// claimant. Approval cascades the item to "claimed" in the same transaction.
func (s *ClaimService) UpdateClaimStatus(ctx context.Context, id, callerID, status string) (models.Claim, error) {
	if !lifecycle.ValidClaimStatus(status) {
		return models.Claim{}, models.ErrInvalidStatus
	}
	claim, err := s.ClaimRepo.GetClaimByID(ctx, id)
	if err != nil {
		return models.Claim{}, err
	}
	if claim.Item.UserID != callerID {
		return models.Claim{}, models.ErrNotOwner
	}
	if !lifecycle.ClaimCanTransition(claim.Status, status) {
		return models.Claim{}, models.ErrInvalidTransition
	}
	return s.ClaimRepo.UpdateClaimStatus(ctx, id, claim.ItemID, status)
}
