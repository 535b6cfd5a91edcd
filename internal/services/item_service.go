package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"lostfound/internal/lifecycle"
	"lostfound/internal/models"
	"lostfound/utils"
)

// ItemStore is the repository surface the item service depends on.
type ItemStore interface {
	GetAllItems(ctx context.Context) ([]models.Item, error)
	GetItemsByUserID(ctx context.Context, userID string) ([]models.Item, error)
	SearchItems(ctx context.Context, filter models.ItemSearchFilter) ([]models.Item, error)
	GetItemByID(ctx context.Context, id string) (models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItemStatus(ctx context.Context, id, status string) (models.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// ImageStore is the blob-store surface for item images.
type ImageStore interface {
	UploadFile(file []byte, objectName, contentType string) (string, error)
	DeleteFile(objectName string) error
}

type ItemService struct {
	ItemRepo ItemStore
	Storage  ImageStore
}

func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.ItemRepo.GetAllItems(ctx)
}

func (s *ItemService) GetItemsByUserID(ctx context.Context, userID string) ([]models.Item, error) {
	return s.ItemRepo.GetItemsByUserID(ctx, userID)
}

func (s *ItemService) SearchItems(ctx context.Context, filter models.ItemSearchFilter) ([]models.Item, error) {
	return s.ItemRepo.SearchItems(ctx, filter)
}

func (s *ItemService) GetItemByID(ctx context.Context, id string) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

// CreateItem stores a new found item for the owner. The status is always
// forced to "available" regardless of what the client sent.
func (s *ItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	item.ID = uuid.New().String()
	item.Status = lifecycle.ItemAvailable
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) UpdateItemStatus(ctx context.Context, id, callerID, status string) (models.Item, error) {
	if !lifecycle.ValidItemStatus(status) {
		return models.Item{}, models.ErrInvalidStatus
	}
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if item.UserID != callerID {
		return models.Item{}, models.ErrNotOwner
	}
	if !lifecycle.ItemCanTransition(item.Status, status) {
		return models.Item{}, models.ErrInvalidTransition
	}
	return s.ItemRepo.UpdateItemStatus(ctx, id, status)
}

// DeleteItem removes the row and then best-effort deletes the stored image.
// A failed blob deletion leaves an orphaned object, which is acceptable.
func (s *ItemService) DeleteItem(ctx context.Context, id, callerID string) error {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item.UserID != callerID {
		return models.ErrNotOwner
	}
	if err := s.ItemRepo.DeleteItem(ctx, id); err != nil {
		return err
	}
	if item.ImageURL != nil && *item.ImageURL != "" {
		if err := s.Storage.DeleteFile(utils.ObjectNameFromURL(*item.ImageURL)); err != nil {
			log.Printf("failed to delete image for item %s: %v", id, err)
		}
	}
	return nil
}

// UploadImage stores an image under a fresh object name and returns its
// public URL.
func (s *ItemService) UploadImage(file []byte, contentType string) (string, error) {
	ext := map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}[contentType]
	objectName := uuid.New().String() + ext
	return s.Storage.UploadFile(file, objectName, contentType)
}
