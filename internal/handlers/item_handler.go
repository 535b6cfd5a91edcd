package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"lostfound/internal/lifecycle"
	"lostfound/internal/models"
	"lostfound/internal/services"
)

const maxImageSize = 5 << 20 // 5MB, mirrors the SPA upload constraint

var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type ItemHandler struct {
	Service *services.ItemService
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetAllItems(r.Context())
	if err != nil {
		log.Printf("GetItems error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *ItemHandler) GetMyItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetItemsByUserID(r.Context(), callerID(r))
	if err != nil {
		log.Printf("GetMyItems error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	filter := models.ItemSearchFilter{
		Query:    r.URL.Query().Get("query"),
		Location: r.URL.Query().Get("location"),
	}
	items, err := h.Service.SearchItems(r.Context(), filter)
	if err != nil {
		log.Printf("SearchItems error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to search items")
		return
	}
	json.NewEncoder(w).Encode(items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	item, err := h.Service.GetItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		log.Printf("GetItemByID error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch item")
		return
	}
	json.NewEncoder(w).Encode(item)
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := missingItemFields(item); len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":    "Missing required fields",
			"required": missing,
		})
		return
	}

	item.UserID = callerID(r)
	created, err := h.Service.CreateItem(r.Context(), item)
	if err != nil {
		log.Printf("CreateItem error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Item posted successfully",
		"data":    created,
	})
}

func (h *ItemHandler) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.UpdateItemStatus(r.Context(), id, callerID(r), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":         "Invalid status",
				"validStatuses": lifecycle.ItemStatuses(),
			})
		case errors.Is(err, models.ErrInvalidTransition):
			writeError(w, http.StatusBadRequest, "Invalid status transition")
		case errors.Is(err, models.ErrItemNotFound), errors.Is(err, models.ErrNotOwner):
			// Whether the item is missing or someone else's is not
			// revealed to the caller.
			writeError(w, http.StatusForbidden, "Not authorized")
		default:
			log.Printf("UpdateItemStatus error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Status updated",
		"data":    item,
	})
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteItem(r.Context(), id, callerID(r)); err != nil {
		switch {
		case errors.Is(err, models.ErrItemNotFound), errors.Is(err, models.ErrNotOwner):
			writeError(w, http.StatusForbidden, "Not authorized")
		default:
			log.Printf("DeleteItem error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to delete item")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

func (h *ItemHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "Image too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !acceptedImageTypes[contentType] {
		writeError(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("UploadImage read error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to read image")
		return
	}

	url, err := h.Service.UploadImage(data, normalizeImageType(contentType))
	if err != nil {
		log.Printf("UploadImage error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Image uploaded",
		"url":     url,
	})
}

func missingItemFields(item models.Item) []string {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"item_name", item.ItemName},
		{"description", item.Description},
		{"location", item.Location},
		{"date_found", item.DateFound},
		{"contact_details", item.ContactDetails},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func normalizeImageType(contentType string) string {
	if contentType == "image/jpg" {
		return "image/jpeg"
	}
	return contentType
}
