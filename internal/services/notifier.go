package services

import (
	"context"
	"fmt"

	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"github.com/Frajuan18/Gym-sub000/internal/spool"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendNotifier emails the ops inbox when a consultation request had
// to land on a non-authoritative tier, so someone knows to check the
// spool or the database.
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendNotifier(apiKey, to string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   "alerts@gym-sub.app",
		to:     to,
	}
}

func (n *ResendNotifier) NotifyDegradedIntake(ctx context.Context, tier string, record spool.Record) {
	subject := fmt.Sprintf("Consultation intake degraded to %s tier", tier)
	body := fmt.Sprintf(
		"A consultation request from %s (%s) was accepted on the %s tier at %s.\n\n"+
			"Preferred slot: %s %s\n\n"+
			"If the tier is local, the record lives in the on-disk spool and must be replayed into the database by hand.",
		record.FullName,
		record.Email,
		tier,
		record.SubmittedAt.Format("2006-01-02 15:04:05 MST"),
		record.PreferredDate,
		record.PreferredTime,
	)

	_, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		logger.Log.Error("failed to send degraded intake notification", zap.Error(err))
	}
}
