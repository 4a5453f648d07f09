package subscription

import (
	"context"
	"time"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/subscription"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateSubscriptionInput struct {
	MemberID  uint
	PlanID    uint
	StartDate string // YYYY-MM-DD, defaults to today
}

// ======================================================
// USE CASE
// ======================================================

type CreateSubscription struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateSubscription(
	repo domain.Repository,
	audit audit.Sink,
) *CreateSubscription {
	return &CreateSubscription{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSubscription) Execute(
	ctx context.Context,
	actorID uint,
	in CreateSubscriptionInput,
) (*models.Subscription, error) {

	member, err := uc.repo.GetMember(ctx, in.MemberID)
	if err != nil {
		return nil, httperr.ErrBusiness("member_not_found")
	}
	if !member.IsActive {
		return nil, httperr.ErrBusiness("member_inactive")
	}

	plan, err := uc.repo.GetPlan(ctx, in.PlanID)
	if err != nil {
		return nil, httperr.ErrBusiness("plan_not_found")
	}
	if !plan.IsActive {
		return nil, httperr.ErrBusiness("plan_inactive")
	}

	start := timezone.Today()
	if in.StartDate != "" {
		start, err = time.ParseInLocation(
			"2006-01-02",
			in.StartDate,
			timezone.Location(timezone.DefaultTimezone),
		)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_start_date")
		}
	}

	sub := &models.Subscription{
		MemberID:  member.ID,
		PlanID:    plan.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, plan.DurationDays),
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "subscription_created",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
