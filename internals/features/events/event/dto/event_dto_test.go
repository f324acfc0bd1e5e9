package dto

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestParseMembershipValid(t *testing.T) {
	a, s := uuid.NewString(), uuid.NewString()
	req := EventRequest{Artists: []string{a}, Sponsors: []string{s}}

	artists, sponsors, err := req.ParseMembership()
	if err != nil {
		t.Fatalf("ParseMembership: %v", err)
	}
	if len(artists) != 1 || artists[0].String() != a {
		t.Errorf("artists = %v, want [%s]", artists, a)
	}
	if len(sponsors) != 1 || sponsors[0].String() != s {
		t.Errorf("sponsors = %v, want [%s]", sponsors, s)
	}
}

func TestParseMembershipDeduplicates(t *testing.T) {
	id := uuid.NewString()
	req := EventRequest{Artists: []string{id, id, " " + id}}

	artists, _, err := req.ParseMembership()
	if err != nil {
		t.Fatalf("ParseMembership: %v", err)
	}
	if len(artists) != 1 {
		t.Errorf("artists = %v, want a single deduplicated ID", artists)
	}
}

func TestParseMembershipRejectsBadID(t *testing.T) {
	req := EventRequest{Artists: []string{"nope"}}
	_, _, err := req.ParseMembership()
	if err == nil {
		t.Fatal("expected an error")
	}
	var ferr *fiber.Error
	if !errors.As(err, &ferr) || ferr.Code != fiber.StatusBadRequest {
		t.Errorf("err = %v, want 400 fiber error", err)
	}
}
