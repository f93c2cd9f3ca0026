// Package notify fans out email notifications for document lifecycle
// events: approval announcements to followers and welcome mail for new
// users.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/vasantha-kumar-s/bloggy/internal/domain"
	"github.com/vasantha-kumar-s/bloggy/internal/logger"
	"github.com/vasantha-kumar-s/bloggy/internal/mail"
	"github.com/vasantha-kumar-s/bloggy/internal/metrics"
	"github.com/vasantha-kumar-s/bloggy/internal/repository"
)

// previewLimit caps the body excerpt included in approval mail.
const previewLimit = 200

// Notifier delivers document lifecycle notifications.
type Notifier struct {
	followRepo repository.FollowRepository
	mailer     mail.Mailer
	baseURL    string
}

// NewNotifier creates a Notifier. baseURL is the public site root used
// to build document links, without a trailing slash.
func NewNotifier(followRepo repository.FollowRepository, mailer mail.Mailer, baseURL string) *Notifier {
	return &Notifier{
		followRepo: followRepo,
		mailer:     mailer,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// DocumentApproved notifies every follower of the document's author.
// A failed send to one recipient does not stop delivery to the rest;
// the error returned reflects only infrastructure failures (the
// follower lookup), never individual send failures.
func (n *Notifier) DocumentApproved(ctx context.Context, doc *domain.Document) error {
	log := logger.WithDocumentID(doc.ID)

	emails, err := n.followRepo.FollowerEmailsByAuthor(ctx, doc.Author)
	if err != nil {
		return fmt.Errorf("list follower emails for %s: %w", doc.Author, err)
	}
	if len(emails) == 0 {
		log.Info("no followers to notify", "author", doc.Author)
		return nil
	}

	subject := fmt.Sprintf("New publication by %s", doc.Author)
	body := n.approvalBody(doc)

	sent := 0
	for _, to := range emails {
		if err := n.mailer.Send(ctx, to, subject, body); err != nil {
			metrics.ObserveNotification("failed")
			log.Error("failed to send approval notification", "to", to, "error", err)
			continue
		}
		metrics.ObserveNotification("sent")
		sent++
	}

	log.Info("approval notifications delivered", "author", doc.Author, "sent", sent, "failed", len(emails)-sent)
	return nil
}

// SendWelcome sends a greeting to a newly registered user.
func (n *Notifier) SendWelcome(ctx context.Context, user *domain.User) error {
	subject := "Welcome to Bloggy"
	body := fmt.Sprintf("Hello %s,\n\nYour account is ready. Start reading at %s or follow your favorite authors to get notified when they publish.\n", user.Name, n.baseURL)

	if err := n.mailer.Send(ctx, user.Email, subject, body); err != nil {
		metrics.ObserveNotification("failed")
		return fmt.Errorf("send welcome mail: %w", err)
	}
	metrics.ObserveNotification("sent")
	return nil
}

func (n *Notifier) approvalBody(doc *domain.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s just published %q.\n\n", doc.Author, doc.Title)
	if preview := previewOf(doc.Body); preview != "" {
		b.WriteString(preview)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Read it here: %s/blog/%s\n", n.baseURL, doc.ID)
	return b.String()
}

// previewOf returns the first previewLimit characters of the body,
// with an ellipsis when truncated.
func previewOf(body string) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= previewLimit {
		return body
	}
	return string(runes[:previewLimit]) + "..."
}
