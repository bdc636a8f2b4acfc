package planner

import (
	"context"
	"time"

	"github.com/Kas-Kady/bbq/internal/models"
	"github.com/Kas-Kady/bbq/internal/postmark"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store is the slice of the storage layer the committer needs. GetBBQ must
// return the BBQ with its attendees (including users and chosen upgrades)
// loaded, or ErrNotFound. SetDate must be a single atomic update keyed by
// the BBQ id.
type Store interface {
	GetBBQ(ctx context.Context, slug string) (*models.BBQ, error)
	SetDate(ctx context.Context, id uuid.UUID, date time.Time) error
}

// Mailer dispatches a confirmation batch. Failure applies to the batch as
// a whole; the committer does not retry.
type Mailer interface {
	Send(batch []postmark.Message) error
}

// Committer finalizes the date of a BBQ and notifies its attendees.
type Committer struct {
	store  Store
	mailer Mailer
	from   postmark.Address
	log    *logrus.Logger
}

func NewCommitter(store Store, mailer Mailer, from postmark.Address, log *logrus.Logger) *Committer {
	return &Committer{
		store:  store,
		mailer: mailer,
		from:   from,
		log:    log,
	}
}

// Commit sets the date of the BBQ behind slug to the given RFC3339 date,
// which must be one of the proposed dates, and mails a confirmation to
// every attendee. When the mail batch fails after the date was persisted,
// the updated BBQ is returned together with a *DispatchError; the date is
// not rolled back. Committing again later replaces the date and notifies
// everyone anew.
func (c *Committer) Commit(ctx context.Context, slug, date string) (*models.BBQ, error) {
	bbq, err := c.store.GetBBQ(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !bbq.HasProposedDate(date) {
		return nil, ErrInvalidDate
	}

	committed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if err := c.store.SetDate(ctx, bbq.ID, committed); err != nil {
		return nil, err
	}
	bbq.Date = &committed

	c.log.WithFields(logrus.Fields{
		"bbq":  bbq.Slug,
		"date": date,
	}).Info("date committed")

	batch := postmark.BuildConfirmations(bbq, bbq.Attendees, c.from)
	if err := c.mailer.Send(batch); err != nil {
		c.log.WithError(err).WithField("bbq", bbq.Slug).Error("confirmation dispatch failed")
		return bbq, &DispatchError{Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"bbq":   bbq.Slug,
		"mails": len(batch),
	}).Info("confirmations sent")

	return bbq, nil
}
