package interests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laksanil/vivaahready/internal/domain/enums"
	"github.com/laksanil/vivaahready/internal/domain/model"
	pgrepo "github.com/laksanil/vivaahready/internal/repo/postgres"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrAlreadySent       = errors.New("interest already sent")
	ErrNotFound          = errors.New("interest not found")
	ErrReceiverNotFound  = errors.New("receiver not found")
	ErrNotReceiver       = errors.New("only the receiver may respond")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const maxMessageLen = 500

type RateLimitedError struct {
	RetryAfterSec int64
}

func (e RateLimitedError) Error() string {
	return "rate limited"
}

func (e RateLimitedError) RetryAfter() int64 {
	if e.RetryAfterSec <= 0 {
		return 1
	}
	return e.RetryAfterSec
}

func IsRateLimited(err error) (*RateLimitedError, bool) {
	var rl RateLimitedError
	if errors.As(err, &rl) {
		return &rl, true
	}
	return nil, false
}

type InterestStore interface {
	Create(ctx context.Context, tx pgx.Tx, senderID, receiverID int64, message string) (pgrepo.InterestRecord, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (pgrepo.InterestRecord, error)
	GetBySenderReceiverForUpdate(ctx context.Context, tx pgx.Tx, senderID, receiverID int64) (pgrepo.InterestRecord, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status string) error
	HasAcceptedReciprocal(ctx context.Context, senderID, receiverID int64) (bool, error)
	ListIncoming(ctx context.Context, userID int64, limit int) ([]pgrepo.InterestListRecord, error)
	ListOutgoing(ctx context.Context, userID int64, limit int) ([]pgrepo.InterestListRecord, error)
}

type DeclinedStore interface {
	Upsert(ctx context.Context, tx pgx.Tx, userID, declinedUserID int64) error
	Delete(ctx context.Context, tx pgx.Tx, userID, declinedUserID int64) error
}

type ContactStore interface {
	GetContactInfo(ctx context.Context, tx pgx.Tx, userID int64) (model.ContactInfo, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID int64) (model.Profile, error)
}

type RateLimiter interface {
	AllowSend(ctx context.Context, userID int64) (int64, bool, error)
}

// Notifier delivery is owned by the notify service; calls here must never
// fail an already-committed transition.
type Notifier interface {
	InterestReceived(ctx context.Context, receiverID, senderID int64)
	InterestAccepted(ctx context.Context, senderID, receiverID int64)
}

type CandidateCache interface {
	Invalidate(ctx context.Context, seekerID int64) error
}

type Service struct {
	pool      *pgxpool.Pool
	withTx    func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error
	interests InterestStore
	declined  DeclinedStore
	contacts  ContactStore
	profiles  ProfileStore
	limiter   RateLimiter
	notifier  Notifier
	cache     CandidateCache
	now       func() time.Time
}

type Dependencies struct {
	Pool      *pgxpool.Pool
	Interests InterestStore
	Declined  DeclinedStore
	Contacts  ContactStore
	Profiles  ProfileStore
	Limiter   RateLimiter
	Notifier  Notifier
	PageCache CandidateCache
}

func NewService(deps Dependencies) *Service {
	s := &Service{
		pool:      deps.Pool,
		interests: deps.Interests,
		declined:  deps.Declined,
		contacts:  deps.Contacts,
		profiles:  deps.Profiles,
		limiter:   deps.Limiter,
		notifier:  deps.Notifier,
		cache:     deps.PageCache,
		now:       time.Now,
	}
	s.withTx = func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error {
		return pgrepo.WithTx(ctx, s.pool, fn)
	}
	return s
}

// ListItem is one row of an incoming or outgoing listing. Mutual is the
// derived flag: the reciprocal edge exists and is accepted.
type ListItem struct {
	ID          int64
	OtherUserID int64
	DisplayName string
	Location    string
	Status      enums.InterestStatus
	Message     string
	Mutual      bool
	CreatedAt   time.Time
}

type RespondResult struct {
	Interest model.Interest
	Mutual   bool
	// Contact is the counterpart's contact card, set only when the
	// response made (or confirmed) the pair mutual.
	Contact *model.ContactInfo
}

// Express records a pending interest from sender to receiver. The edge is
// unique per ordered pair for its whole lifetime; a second send reports
// ErrAlreadySent regardless of the current status.
func (s *Service) Express(ctx context.Context, senderID, receiverID int64, message string) (model.Interest, error) {
	if senderID <= 0 || receiverID <= 0 || senderID == receiverID {
		return model.Interest{}, fmt.Errorf("invalid interest pair: %w", ErrValidation)
	}
	message = strings.TrimSpace(message)
	if len(message) > maxMessageLen {
		return model.Interest{}, fmt.Errorf("message too long: %w", ErrValidation)
	}
	if s.interests == nil || s.profiles == nil {
		return model.Interest{}, fmt.Errorf("interest dependencies are not configured")
	}

	if s.limiter != nil {
		retryAfter, allowed, err := s.limiter.AllowSend(ctx, senderID)
		if err != nil {
			return model.Interest{}, fmt.Errorf("apply send rate limiter: %w", err)
		}
		if !allowed {
			return model.Interest{}, RateLimitedError{RetryAfterSec: retryAfter}
		}
	}

	if _, err := s.profiles.GetProfile(ctx, receiverID); err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return model.Interest{}, ErrReceiverNotFound
		}
		return model.Interest{}, fmt.Errorf("get receiver profile: %w", err)
	}

	var rec pgrepo.InterestRecord
	if err := s.withTx(ctx, func(txCtx context.Context, tx pgx.Tx) error {
		created, err := s.interests.Create(txCtx, tx, senderID, receiverID, message)
		if err != nil {
			if errors.Is(err, pgrepo.ErrInterestExists) {
				return ErrAlreadySent
			}
			return err
		}
		rec = created
		return nil
	}); err != nil {
		return model.Interest{}, err
	}

	if s.notifier != nil {
		s.notifier.InterestReceived(ctx, receiverID, senderID)
	}

	return toInterest(rec), nil
}

// Respond applies a receiver action to an interest. All writes of one
// transition, including the reciprocal flip and the declined-list update,
// commit in a single transaction.
func (s *Service) Respond(ctx context.Context, userID, interestID int64, action enums.InterestAction) (RespondResult, error) {
	if userID <= 0 || interestID <= 0 {
		return RespondResult{}, fmt.Errorf("invalid respond payload: %w", ErrValidation)
	}
	switch action {
	case enums.InterestActionAccept, enums.InterestActionReject, enums.InterestActionReconsider:
	default:
		return RespondResult{}, fmt.Errorf("unknown action %q: %w", action, ErrValidation)
	}
	if s.interests == nil || s.declined == nil {
		return RespondResult{}, fmt.Errorf("interest dependencies are not configured")
	}

	var result RespondResult
	accepted := false

	if err := s.withTx(ctx, func(txCtx context.Context, tx pgx.Tx) error {
		rec, err := s.interests.GetByIDForUpdate(txCtx, tx, interestID)
		if err != nil {
			if errors.Is(err, pgrepo.ErrInterestNotFound) {
				return ErrNotFound
			}
			return err
		}
		if rec.ReceiverID != userID {
			return ErrNotReceiver
		}

		status := enums.InterestStatus(rec.Status)

		switch action {
		case enums.InterestActionAccept:
			return s.applyAccept(txCtx, tx, rec, &result, &accepted)

		case enums.InterestActionReject:
			if status != enums.InterestStatusRejected {
				if err := s.interests.UpdateStatus(txCtx, tx, rec.ID, string(enums.InterestStatusRejected)); err != nil {
					return err
				}
			}
			// The receiver no longer wants to see this sender while
			// browsing.
			if err := s.declined.Upsert(txCtx, tx, rec.ReceiverID, rec.SenderID); err != nil {
				return err
			}
			rec.Status = string(enums.InterestStatusRejected)
			result.Interest = toInterest(rec)
			return nil

		case enums.InterestActionReconsider:
			if status != enums.InterestStatusRejected {
				return ErrInvalidTransition
			}
			return s.applyAccept(txCtx, tx, rec, &result, &accepted)
		}
		return nil
	}); err != nil {
		return RespondResult{}, err
	}

	if accepted && s.notifier != nil {
		s.notifier.InterestAccepted(ctx, result.Interest.SenderID, result.Interest.ReceiverID)
	}
	if s.cache != nil {
		// Rejections and reconsiderations change what the receiver's
		// candidate listing may show.
		_ = s.cache.Invalidate(ctx, userID)
	}

	return result, nil
}

// applyAccept moves the edge to accepted, clears any declined-list entry the
// receiver held against the sender, flips a pending reciprocal edge, and
// discloses contacts when the pair ends up mutual. Accepting an already
// accepted edge is a no-op that still reports mutuality.
func (s *Service) applyAccept(ctx context.Context, tx pgx.Tx, rec pgrepo.InterestRecord, result *RespondResult, accepted *bool) error {
	if rec.Status != string(enums.InterestStatusAccepted) {
		if err := s.interests.UpdateStatus(ctx, tx, rec.ID, string(enums.InterestStatusAccepted)); err != nil {
			return err
		}
		*accepted = true
	}
	if err := s.declined.Delete(ctx, tx, rec.ReceiverID, rec.SenderID); err != nil {
		return err
	}

	mutual := false
	reciprocal, err := s.interests.GetBySenderReceiverForUpdate(ctx, tx, rec.ReceiverID, rec.SenderID)
	switch {
	case err == nil:
		switch enums.InterestStatus(reciprocal.Status) {
		case enums.InterestStatusAccepted:
			mutual = true
		case enums.InterestStatusPending:
			if err := s.interests.UpdateStatus(ctx, tx, reciprocal.ID, string(enums.InterestStatusAccepted)); err != nil {
				return err
			}
			mutual = true
		}
	case errors.Is(err, pgrepo.ErrInterestNotFound):
		// No reciprocal edge; the pair is not mutual yet.
	default:
		return err
	}

	rec.Status = string(enums.InterestStatusAccepted)
	result.Interest = toInterest(rec)
	result.Mutual = mutual

	if mutual && s.contacts != nil {
		contact, err := s.contacts.GetContactInfo(ctx, tx, rec.SenderID)
		if err != nil {
			if errors.Is(err, pgrepo.ErrContactNotFound) {
				return nil
			}
			return err
		}
		result.Contact = &contact
	}

	return nil
}

func (s *Service) ListIncoming(ctx context.Context, userID int64, limit int) ([]ListItem, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if s.interests == nil {
		return nil, fmt.Errorf("interest dependencies are not configured")
	}

	records, err := s.interests.ListIncoming(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list incoming interests: %w", err)
	}
	return s.toListItems(ctx, userID, records, true)
}

func (s *Service) ListOutgoing(ctx context.Context, userID int64, limit int) ([]ListItem, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if s.interests == nil {
		return nil, fmt.Errorf("interest dependencies are not configured")
	}

	records, err := s.interests.ListOutgoing(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list outgoing interests: %w", err)
	}
	return s.toListItems(ctx, userID, records, false)
}

func (s *Service) toListItems(ctx context.Context, userID int64, records []pgrepo.InterestListRecord, incoming bool) ([]ListItem, error) {
	items := make([]ListItem, 0, len(records))
	for _, rec := range records {
		item := ListItem{
			ID:          rec.ID,
			OtherUserID: rec.OtherUserID,
			DisplayName: rec.DisplayName,
			Location:    rec.Location,
			Status:      enums.InterestStatus(rec.Status),
			Message:     rec.Message,
			CreatedAt:   rec.CreatedAt,
		}
		// Mutuality is derived, never stored: only accepted edges can be
		// part of a mutual pair, so the reciprocal lookup is skipped for
		// the rest.
		if item.Status == enums.InterestStatusAccepted {
			senderID, receiverID := rec.OtherUserID, userID
			if !incoming {
				senderID, receiverID = userID, rec.OtherUserID
			}
			mutual, err := s.interests.HasAcceptedReciprocal(ctx, senderID, receiverID)
			if err != nil {
				return nil, fmt.Errorf("derive mutuality: %w", err)
			}
			item.Mutual = mutual
		}
		items = append(items, item)
	}
	return items, nil
}

func toInterest(rec pgrepo.InterestRecord) model.Interest {
	return model.Interest{
		ID:         rec.ID,
		SenderID:   rec.SenderID,
		ReceiverID: rec.ReceiverID,
		Status:     enums.InterestStatus(rec.Status),
		Message:    rec.Message,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
