package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	artistModel "oasisevents_backend/internals/features/events/artist/model"
	paymentModel "oasisevents_backend/internals/features/events/payment/model"
	sponsorModel "oasisevents_backend/internals/features/events/sponsor/model"
)

// DiffMembership splits a membership change into additions and removals.
// IDs present in both lists are left untouched so their ledger rows keep
// their financial fields.
func DiffMembership(oldIDs, newIDs []uuid.UUID) (added, removed []uuid.UUID) {
	oldSet := make(map[uuid.UUID]struct{}, len(oldIDs))
	for _, id := range oldIDs {
		oldSet[id] = struct{}{}
	}
	newSet := make(map[uuid.UUID]struct{}, len(newIDs))
	for _, id := range newIDs {
		newSet[id] = struct{}{}
	}

	for _, id := range newIDs {
		if _, ok := oldSet[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range oldIDs {
		if _, ok := newSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}

func ensureArtistsExist(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var cnt int64
	if err := tx.Model(&artistModel.ArtistModel{}).Where("artist_id IN ?", ids).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check artists")
	}
	if cnt != int64(len(ids)) {
		return fiber.NewError(fiber.StatusNotFound, "One or more artists not found")
	}
	return nil
}

func ensureSponsorsExist(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var cnt int64
	if err := tx.Model(&sponsorModel.SponsorModel{}).Where("sponsor_id IN ?", ids).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check sponsors")
	}
	if cnt != int64(len(ids)) {
		return fiber.NewError(fiber.StatusNotFound, "One or more sponsors not found")
	}
	return nil
}

// ArtistMembership returns the artist IDs currently linked to an event.
func ArtistMembership(db *gorm.DB, eventID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&paymentModel.EventArtistPaymentModel{}).
		Where("payment_event_id = ?", eventID).
		Pluck("payment_artist_id", &ids).Error
	return ids, err
}

// SponsorMembership returns the sponsor IDs currently linked to an event.
func SponsorMembership(db *gorm.DB, eventID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&paymentModel.EventSponsorPaymentModel{}).
		Where("payment_event_id = ?", eventID).
		Pluck("payment_sponsor_id", &ids).Error
	return ids, err
}

// ReconcileArtists brings the (event, artist) ledger rows in line with the
// submitted list. Must run inside a transaction.
func ReconcileArtists(tx *gorm.DB, eventID uuid.UUID, oldIDs, newIDs []uuid.UUID) error {
	if err := ensureArtistsExist(tx, newIDs); err != nil {
		return err
	}

	added, removed := DiffMembership(oldIDs, newIDs)

	if len(removed) > 0 {
		if err := tx.Where("payment_event_id = ? AND payment_artist_id IN ?", eventID, removed).
			Delete(&paymentModel.EventArtistPaymentModel{}).Error; err != nil {
			return fmt.Errorf("delete artist ledger rows: %w", err)
		}
	}
	for _, artistID := range added {
		row := paymentModel.EventArtistPaymentModel{
			PaymentEventID:  eventID,
			PaymentArtistID: artistID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create artist ledger row: %w", err)
		}
	}
	return nil
}

// ReconcileSponsors: sponsor twin of ReconcileArtists.
func ReconcileSponsors(tx *gorm.DB, eventID uuid.UUID, oldIDs, newIDs []uuid.UUID) error {
	if err := ensureSponsorsExist(tx, newIDs); err != nil {
		return err
	}

	added, removed := DiffMembership(oldIDs, newIDs)

	if len(removed) > 0 {
		if err := tx.Where("payment_event_id = ? AND payment_sponsor_id IN ?", eventID, removed).
			Delete(&paymentModel.EventSponsorPaymentModel{}).Error; err != nil {
			return fmt.Errorf("delete sponsor ledger rows: %w", err)
		}
	}
	for _, sponsorID := range added {
		row := paymentModel.EventSponsorPaymentModel{
			PaymentEventID:   eventID,
			PaymentSponsorID: sponsorID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create sponsor ledger row: %w", err)
		}
	}
	return nil
}
