package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/laksanil/vivaahready/internal/domain/enums"
	"github.com/laksanil/vivaahready/internal/domain/model"
)

type NotificationStore interface {
	Insert(ctx context.Context, n model.Notification) (model.Notification, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID int64, id string) error
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID int64) (model.Profile, error)
}

type ContactReader interface {
	GetOwnContact(ctx context.Context, userID int64) (model.ContactInfo, error)
}

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, to, text string) error
}

type Config struct {
	EnableEmail     bool
	EnableSMS       bool
	DeliveryTimeout time.Duration
}

// Service fans one event out to the in-app feed and the external channels.
// Delivery is best effort: a failed email or SMS is logged and dropped, it
// never propagates into the transition that raised the event.
type Service struct {
	store    NotificationStore
	profiles ProfileStore
	contacts ContactReader
	email    EmailSender
	sms      SMSSender
	log      *zap.Logger
	cfg      Config
	dispatch func(fn func())
}

type Dependencies struct {
	Store    NotificationStore
	Profiles ProfileStore
	Contacts ContactReader
	Email    EmailSender
	SMS      SMSSender
	Logger   *zap.Logger
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = 10 * time.Second
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		store:    deps.Store,
		profiles: deps.Profiles,
		contacts: deps.Contacts,
		email:    deps.Email,
		sms:      deps.SMS,
		log:      log,
		cfg:      cfg,
		dispatch: func(fn func()) { go fn() },
	}
}

func (s *Service) InterestReceived(_ context.Context, receiverID, senderID int64) {
	s.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.DeliveryTimeout)
		defer cancel()

		senderName := s.displayName(ctx, senderID)
		title := "New interest"
		body := fmt.Sprintf("%s has expressed interest in your profile.", senderName)

		s.deliver(ctx, receiverID, enums.NotificationKindNewInterest, title, body)
	})
}

func (s *Service) InterestAccepted(_ context.Context, senderID, receiverID int64) {
	s.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.DeliveryTimeout)
		defer cancel()

		receiverName := s.displayName(ctx, receiverID)
		title := "Interest accepted"
		body := fmt.Sprintf("%s accepted your interest.", receiverName)

		s.deliver(ctx, senderID, enums.NotificationKindInterestAccepted, title, body)
	})
}

func (s *Service) ListRecent(ctx context.Context, userID int64, limit int) ([]model.Notification, error) {
	if s.store == nil {
		return nil, fmt.Errorf("notification store is nil")
	}
	return s.store.ListRecent(ctx, userID, limit)
}

func (s *Service) MarkRead(ctx context.Context, userID int64, id string) error {
	if s.store == nil {
		return fmt.Errorf("notification store is nil")
	}
	return s.store.MarkRead(ctx, userID, id)
}

func (s *Service) deliver(ctx context.Context, userID int64, kind enums.NotificationKind, title, body string) {
	if s.store != nil {
		if _, err := s.store.Insert(ctx, model.Notification{
			UserID: userID,
			Kind:   kind,
			Title:  title,
			Body:   body,
		}); err != nil {
			s.log.Warn("send notification",
				zap.Int64("user_id", userID),
				zap.String("kind", string(kind)),
				zap.String("channel", string(enums.NotificationChannelInApp)),
				zap.Error(err))
		}
	}

	if !s.cfg.EnableEmail && !s.cfg.EnableSMS {
		return
	}
	if s.contacts == nil {
		return
	}

	contact, err := s.contacts.GetOwnContact(ctx, userID)
	if err != nil {
		s.log.Warn("load contact for notification",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return
	}

	if s.cfg.EnableEmail && s.email != nil && contact.Email != "" {
		if err := s.email.SendEmail(ctx, contact.Email, title, body); err != nil {
			s.log.Warn("send notification",
				zap.Int64("user_id", userID),
				zap.String("kind", string(kind)),
				zap.String("channel", string(enums.NotificationChannelEmail)),
				zap.Error(err))
		}
	}

	if s.cfg.EnableSMS && s.sms != nil && contact.Phone != "" {
		if err := s.sms.SendSMS(ctx, contact.Phone, body); err != nil {
			s.log.Warn("send notification",
				zap.Int64("user_id", userID),
				zap.String("kind", string(kind)),
				zap.String("channel", string(enums.NotificationChannelSMS)),
				zap.Error(err))
		}
	}
}

func (s *Service) displayName(ctx context.Context, userID int64) string {
	if s.profiles == nil {
		return "Someone"
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil || profile.DisplayName == "" {
		return "Someone"
	}
	return profile.DisplayName
}
