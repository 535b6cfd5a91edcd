package services

import (
	"context"
	"errors"
	"testing"

	"lostfound/internal/lifecycle"
	"lostfound/internal/models"
)

type stubItemStore struct {
	items   map[string]models.Item
	created *models.Item
}

func (s *stubItemStore) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return nil, nil
}

func (s *stubItemStore) GetItemsByUserID(ctx context.Context, userID string) ([]models.Item, error) {
	return nil, nil
}

func (s *stubItemStore) SearchItems(ctx context.Context, filter models.ItemSearchFilter) ([]models.Item, error) {
	return nil, nil
}

func (s *stubItemStore) GetItemByID(ctx context.Context, id string) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

func (s *stubItemStore) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	s.created = &item
	if s.items == nil {
		s.items = map[string]models.Item{}
	}
	s.items[item.ID] = item
	return item, nil
}

func (s *stubItemStore) UpdateItemStatus(ctx context.Context, id, status string) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	item.Status = status
	s.items[id] = item
	return item, nil
}

func (s *stubItemStore) DeleteItem(ctx context.Context, id string) error {
	delete(s.items, id)
	return nil
}

type stubImageStore struct {
	deleted []string
}

func (s *stubImageStore) UploadFile(file []byte, objectName, contentType string) (string, error) {
	return "https://cdn.example.com/" + objectName, nil
}

func (s *stubImageStore) DeleteFile(objectName string) error {
	s.deleted = append(s.deleted, objectName)
	return nil
}

func TestCreateItemForcesAvailableStatus(t *testing.T) {
	store := &stubItemStore{}
	service := &ItemService{ItemRepo: store}

	created, err := service.CreateItem(context.Background(), models.Item{
		UserID:   "owner-1",
		ItemName: "Blue backpack",
		Status:   lifecycle.ItemClaimed,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.Status != lifecycle.ItemAvailable {
		t.Fatalf("expected status %q, got %q", lifecycle.ItemAvailable, created.Status)
	}
	if created.ID == "" {
		t.Fatal("expected a generated item id")
	}
	if store.created == nil || store.created.Status != lifecycle.ItemAvailable {
		t.Fatal("client-supplied status reached the store")
	}
}

func TestUpdateItemStatus(t *testing.T) {
	cases := []struct {
		name       string
		itemStatus string
		callerID   string
		newStatus  string
		wantErr    error
		wantStatus string
	}{
		{"unknown status", lifecycle.ItemAvailable, "owner-1", "vanished", models.ErrInvalidStatus, ""},
		{"not the owner", lifecycle.ItemAvailable, "someone-else", lifecycle.ItemClaimed, models.ErrNotOwner, ""},
		{"available to returned", lifecycle.ItemAvailable, "owner-1", lifecycle.ItemReturned, models.ErrInvalidTransition, ""},
		{"available to claimed", lifecycle.ItemAvailable, "owner-1", lifecycle.ItemClaimed, nil, lifecycle.ItemClaimed},
		{"claimed to returned", lifecycle.ItemClaimed, "owner-1", lifecycle.ItemReturned, nil, lifecycle.ItemReturned},
		{"relist a claimed item", lifecycle.ItemClaimed, "owner-1", lifecycle.ItemAvailable, nil, lifecycle.ItemAvailable},
		{"same status is a no-op", lifecycle.ItemAvailable, "owner-1", lifecycle.ItemAvailable, nil, lifecycle.ItemAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubItemStore{items: map[string]models.Item{
				"item-1": {ID: "item-1", UserID: "owner-1", Status: tc.itemStatus},
			}}
			service := &ItemService{ItemRepo: store}

			updated, err := service.UpdateItemStatus(context.Background(), "item-1", tc.callerID, tc.newStatus)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && updated.Status != tc.wantStatus {
				t.Fatalf("expected status %q, got %q", tc.wantStatus, updated.Status)
			}
			if tc.wantErr != nil && store.items["item-1"].Status != tc.itemStatus {
				t.Fatal("rejected update changed the stored status")
			}
		})
	}
}

func TestUpdateItemStatusMissingItem(t *testing.T) {
	service := &ItemService{ItemRepo: &stubItemStore{}}

	_, err := service.UpdateItemStatus(context.Background(), "no-such-item", "owner-1", lifecycle.ItemClaimed)
	if !errors.Is(err, models.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	imageURL := "https://cdn.example.com/photo-1.jpg"

	t.Run("rejects a non-owner", func(t *testing.T) {
		store := &stubItemStore{items: map[string]models.Item{
			"item-1": {ID: "item-1", UserID: "owner-1"},
		}}
		service := &ItemService{ItemRepo: store, Storage: &stubImageStore{}}

		err := service.DeleteItem(context.Background(), "item-1", "someone-else")
		if !errors.Is(err, models.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
		if _, ok := store.items["item-1"]; !ok {
			t.Fatal("item was deleted despite ownership failure")
		}
	})

	t.Run("removes the row and the stored image", func(t *testing.T) {
		store := &stubItemStore{items: map[string]models.Item{
			"item-1": {ID: "item-1", UserID: "owner-1", ImageURL: &imageURL},
		}}
		storage := &stubImageStore{}
		service := &ItemService{ItemRepo: store, Storage: storage}

		if err := service.DeleteItem(context.Background(), "item-1", "owner-1"); err != nil {
			t.Fatal(err)
		}
		if _, ok := store.items["item-1"]; ok {
			t.Fatal("item still present after delete")
		}
		if len(storage.deleted) != 1 || storage.deleted[0] != "photo-1.jpg" {
			t.Fatalf("expected image object photo-1.jpg deleted, got %v", storage.deleted)
		}
	})
}
