package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Complete(p *models.Payment, now time.Time) error {
	if err := CanComplete(Status(p.Status)); err != nil {
		return err
	}

	p.Status = string(StatusCompleted)
	p.CompletedAt = &now
	return nil
}

func Fail(p *models.Payment, reason string) error {
	if err := CanFail(Status(p.Status)); err != nil {
		return err
	}

	p.Status = string(StatusFailed)
	if reason != "" {
		p.Notes = strings.TrimSpace(p.Notes + "\nFailure reason: " + reason)
	}
	return nil
}

// TransactionID builds the canonical transaction id: TXN + timestamp at
// seconds resolution + owning member id. Two payments for the same member
// within one second collide, so the repository retries with Disambiguate.
func TransactionID(now time.Time, memberID uint) string {
	return fmt.Sprintf("TXN%s%d", now.Format("20060102150405"), memberID)
}

// Disambiguate appends a suffix to a colliding transaction id.
func Disambiguate(txnID, suffix string) string {
	return txnID + "-" + suffix
}
