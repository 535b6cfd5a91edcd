package services

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/messaging"

	"lostfound/internal/repositories"
)

// NotificationService sends FCM pushes to a user's registered devices.
// A nil messaging client disables delivery entirely.
type NotificationService struct {
	Client    *messaging.Client
	TokenRepo *repositories.DeviceTokenRepository
}

func (s *NotificationService) RegisterToken(ctx context.Context, userID, token string) error {
	return s.TokenRepo.SaveToken(ctx, userID, token)
}

func (s *NotificationService) ClaimReceived(ctx context.Context, ownerID, itemName, claimantName string) {
	if s.Client == nil {
		return
	}
	tokens, err := s.TokenRepo.GetTokensByUserID(ctx, ownerID)
	if err != nil {
		log.Printf("failed to load device tokens for user %s: %v", ownerID, err)
		return
	}
	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: "New claim received",
				Body:  fmt.Sprintf("%s claimed your item %q", claimantName, itemName),
			},
			Data: map[string]string{
				"type": "claim_received",
			},
		}
		if _, err := s.Client.Send(ctx, message); err != nil {
			log.Printf("failed to send push to user %s: %v", ownerID, err)
			// Stale registrations come back as errors; drop them so we stop
			// retrying dead devices.
			if messaging.IsRegistrationTokenNotRegistered(err) {
				if err := s.TokenRepo.DeleteToken(ctx, token); err != nil {
					log.Printf("failed to delete stale device token: %v", err)
				}
			}
		}
	}
}
