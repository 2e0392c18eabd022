package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"

	"github.com/dyorhub/referral-service/internal/logger"
	"github.com/dyorhub/referral-service/internal/models"
)

// Error variables
var (
	ErrCodeGeneration       = errors.New("failed to generate unique referral code")
	ErrReferralCodeNotFound = errors.New("referral code not found")
	ErrSelfReferral         = errors.New("cannot use your own referral code")
	ErrAlreadyReferred      = errors.New("user has already been referred")
	ErrUserNotFound         = errors.New("user not found")
)

const (
	referralCodeLength   = 5
	referralCodeCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeGenerateAttempts = 5

	defaultLeaderboardLimit = 20
	maxLeaderboardLimit     = 100
)

// UserReader defines read-only user operations needed by the referral service.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByReferralCode(ctx context.Context, code string) (*models.UserDB, error)
}

// UserCodeWriter assigns referral codes to users.
type UserCodeWriter interface {
	SetReferralCode(ctx context.Context, userID uuid.UUID, code string) error
}

// ReferralReader defines read-only referral operations.
type ReferralReader interface {
	GetByReferredUserID(ctx context.Context, referredUserID uuid.UUID) (*models.ReferralWithReferrer, error)
	ListByReferrerID(ctx context.Context, referrerID uuid.UUID) ([]models.ReferralWithUser, error)
	Leaderboard(ctx context.Context, limit, offset int) ([]models.LeaderboardEntry, error)
	CountReferrers(ctx context.Context) (int, error)
}

// ReferralWriter inserts referral rows.
type ReferralWriter interface {
	Save(ctx context.Context, referrerID, referredUserID uuid.UUID) (uuid.UUID, error)
}

// LeaderboardCache caches leaderboard pages.
type LeaderboardCache interface {
	GetPage(ctx context.Context, page, limit int) (*models.LeaderboardPage, error)
	SetPage(ctx context.Context, page, limit int, result *models.LeaderboardPage) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ReferralService handles referral code assignment, redemption, status,
// history, the leaderboard, and Kafka publishing of successful redemptions.
type ReferralService struct {
	userReader     UserReader
	userCodeWriter UserCodeWriter
	referralReader ReferralReader
	referralWriter ReferralWriter
	cache          LeaderboardCache
	kafkaWriter    KafkaWriter
}

// NewReferralService creates a new ReferralService.
func NewReferralService(
	userReader UserReader,
	userCodeWriter UserCodeWriter,
	referralReader ReferralReader,
	referralWriter ReferralWriter,
	cache LeaderboardCache,
	kafkaWriter KafkaWriter,
) *ReferralService {
	return &ReferralService{
		userReader:     userReader,
		userCodeWriter: userCodeWriter,
		referralReader: referralReader,
		referralWriter: referralWriter,
		cache:          cache,
		kafkaWriter:    kafkaWriter,
	}
}

// generateCode returns a random referral code of referralCodeLength
// characters drawn from referralCodeCharset.
func generateCode() (string, error) {
	buf := make([]byte, referralCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = referralCodeCharset[int(b)%len(referralCodeCharset)]
	}
	return string(buf), nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// GetReferralCode returns the user's referral code, assigning one on first
// request. Repeated calls return the same code. Generation retries up to
// codeGenerateAttempts times on collision and then fails hard; there is no
// alphabet or length widening fallback.
func (s *ReferralService) GetReferralCode(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "userID", userID)
		return "", ErrUserNotFound
	}
	if user.ReferralCode != nil {
		return *user.ReferralCode, nil
	}

	for attempt := 0; attempt < codeGenerateAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			logger.Log.Errorw("failed to generate referral code", "err", err)
			return "", err
		}

		owner, err := s.userReader.GetByReferralCode(ctx, code)
		if err != nil {
			logger.Log.Errorw("failed to check referral code collision", "code", code, "err", err)
			return "", err
		}
		if owner != nil {
			logger.Log.Infow("referral code collision, retrying", "code", code, "attempt", attempt+1)
			continue
		}

		if err := s.userCodeWriter.SetReferralCode(ctx, userID, code); err != nil {
			logger.Log.Errorw("failed to save referral code", "userID", userID, "code", code, "err", err)
			return "", err
		}
		return code, nil
	}

	logger.Log.Errorw("exhausted referral code generation attempts", "userID", userID)
	return "", ErrCodeGeneration
}

// ProcessReferral records a redemption at signup time. Every failure mode
// except an unexpected database error is a silent no-op so that signup is
// never blocked: empty or unknown codes, self-referral, an already referred
// user, and the losing side of a concurrent duplicate insert all log and
// return nil.
func (s *ReferralService) ProcessReferral(ctx context.Context, code string, referredUserID uuid.UUID) error {
	if code == "" {
		return nil
	}

	referrer, err := s.userReader.GetByReferralCode(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to look up referral code", "code", code, "err", err)
		return err
	}
	if referrer == nil {
		logger.Log.Infow("referral code not found, skipping", "code", code, "referredUserID", referredUserID)
		return nil
	}
	if referrer.UserID == referredUserID {
		logger.Log.Infow("self-referral attempt, skipping", "userID", referredUserID, "code", code)
		return nil
	}

	existing, err := s.referralReader.GetByReferredUserID(ctx, referredUserID)
	if err != nil {
		logger.Log.Errorw("failed to check existing referral", "referredUserID", referredUserID, "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Infow("user already referred, skipping", "referredUserID", referredUserID)
		return nil
	}

	referralID, err := s.referralWriter.Save(ctx, referrer.UserID, referredUserID)
	if err != nil {
		if isUniqueViolation(err) {
			// Two concurrent redemptions for the same new user: the unique
			// constraint on referred_user_id decided the winner, the loser
			// is a benign race.
			logger.Log.Infow("concurrent referral insert lost race, skipping", "referredUserID", referredUserID)
			return nil
		}
		logger.Log.Errorw("failed to save referral", "referrerID", referrer.UserID, "referredUserID", referredUserID, "err", err)
		return err
	}

	s.publishReferralEvent(ctx, referralID, referrer.UserID, referredUserID)
	return nil
}

// ApplyManualReferral records a user-initiated redemption. Unlike
// ProcessReferral the failure modes are surfaced to the caller because the
// user is waiting on the result. Returns the referrer's username for UI
// confirmation.
func (s *ReferralService) ApplyManualReferral(ctx context.Context, userID uuid.UUID, code string) (string, error) {
	existing, err := s.referralReader.GetByReferredUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check existing referral", "userID", userID, "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Infow("user already referred", "userID", userID)
		return "", ErrAlreadyReferred
	}

	referrer, err := s.userReader.GetByReferralCode(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to look up referral code", "code", code, "err", err)
		return "", err
	}
	if referrer == nil {
		return "", ErrReferralCodeNotFound
	}
	if referrer.UserID == userID {
		return "", ErrSelfReferral
	}

	referralID, err := s.referralWriter.Save(ctx, referrer.UserID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost a race against a concurrent redemption for the same user.
			logger.Log.Infow("concurrent referral insert lost race", "userID", userID)
			return "", ErrAlreadyReferred
		}
		logger.Log.Errorw("failed to save referral", "referrerID", referrer.UserID, "userID", userID, "err", err)
		return "", err
	}

	s.publishReferralEvent(ctx, referralID, referrer.UserID, userID)
	return referrer.Username, nil
}

// GetReferralStatus reports whether the user has been referred and by whom.
func (s *ReferralService) GetReferralStatus(ctx context.Context, userID uuid.UUID) (*models.ReferralStatus, error) {
	referral, err := s.referralReader.GetByReferredUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get referral status", "userID", userID, "err", err)
		return nil, err
	}
	if referral == nil {
		return &models.ReferralStatus{HasBeenReferred: false}, nil
	}
	return &models.ReferralStatus{
		HasBeenReferred:  true,
		ReferrerUsername: &referral.ReferrerUsername,
	}, nil
}

// GetReferralsMadeByUser returns all referrals where the user is the
// referrer, newest first.
func (s *ReferralService) GetReferralsMadeByUser(ctx context.Context, userID uuid.UUID) ([]models.ReferralWithUser, error) {
	referrals, err := s.referralReader.ListByReferrerID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list referrals", "userID", userID, "err", err)
		return nil, err
	}
	return referrals, nil
}

// GetReferralLeaderboard returns one page of referrers ranked by referral
// count descending. Page and limit are clamped before querying. Pages are
// served from the Redis cache when possible; cache failures degrade to the
// database.
func (s *ReferralService) GetReferralLeaderboard(ctx context.Context, page, limit int) (*models.LeaderboardPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	if s.cache != nil {
		if cached, err := s.cache.GetPage(ctx, page, limit); err == nil {
			return cached, nil
		}
	}

	total, err := s.referralReader.CountReferrers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count referrers", "err", err)
		return nil, err
	}

	entries, err := s.referralReader.Leaderboard(ctx, limit, (page-1)*limit)
	if err != nil {
		logger.Log.Errorw("failed to get leaderboard", "page", page, "limit", limit, "err", err)
		return nil, err
	}

	result := &models.LeaderboardPage{
		Entries:    entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}

	if s.cache != nil {
		if err := s.cache.SetPage(ctx, page, limit, result); err != nil {
			logger.Log.Errorw("failed to cache leaderboard page", "page", page, "limit", limit, "err", err)
		}
	}

	return result, nil
}

// publishReferralEvent publishes a referral.successful event to Kafka.
func (s *ReferralService) publishReferralEvent(ctx context.Context, referralID, referrerID, referredUserID uuid.UUID) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "referral_id", referralID)
		return
	}

	event := models.ReferralEvent{
		Event:          models.EventReferralSuccessful,
		ReferralID:     referralID.String(),
		ReferrerID:     referrerID.String(),
		ReferredUserID: referredUserID.String(),
		Timestamp:      time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal referral event for Kafka", "referral_id", referralID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ReferralID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish referral event to Kafka", "referral_id", referralID, "error", err)
	} else {
		logger.Log.Infow("Referral event published to Kafka", "referral_id", referralID, "referrer_id", referrerID)
	}
}
