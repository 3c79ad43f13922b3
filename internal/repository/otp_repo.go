package repository

import (
	"context"
	"errors"
	"fmt"

	"news_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// OtpRepository defines operations for one-time registration codes
type OtpRepository interface {
	Create(ctx context.Context, otp *model.OtpCode) error
	DeleteExpired(ctx context.Context, email string) error
	PurgeExpired(ctx context.Context) (int64, error)
	Consume(ctx context.Context, email, code string) (*model.OtpCode, error)
}

type otpRepository struct {
	db DB
}

// NewOtpRepository creates a new OtpRepository
func NewOtpRepository(db DB) OtpRepository {
	return &otpRepository{db: db}
}

// Create inserts a new OTP code. Multiple outstanding valid codes per email
// are allowed; issuing a new code does not invalidate earlier ones.
func (r *otpRepository) Create(ctx context.Context, otp *model.OtpCode) error {
	sql := `INSERT INTO otp_codes (email, code, expires_at, is_used, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, otp.Email, otp.Code, otp.ExpiresAt, otp.IsUsed, otp.CreatedAt).Scan(&otp.ID)
	if err != nil {
		return fmt.Errorf("failed to create otp code: %w", err)
	}
	return nil
}

// DeleteExpired removes already-expired codes for an email. Best-effort
// cleanup; expired codes are unmatchable either way.
func (r *otpRepository) DeleteExpired(ctx context.Context, email string) error {
	sql := `DELETE FROM otp_codes WHERE email = $1 AND expires_at < NOW()`
	if _, err := r.db.Exec(ctx, sql, email); err != nil {
		return fmt.Errorf("failed to delete expired otp codes: %w", err)
	}
	return nil
}

// PurgeExpired removes expired codes across all emails. Run periodically so
// abandoned registrations do not accumulate rows.
func (r *otpRepository) PurgeExpired(ctx context.Context) (int64, error) {
	sql := `DELETE FROM otp_codes WHERE expires_at < NOW()`
	tag, err := r.db.Exec(ctx, sql)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired otp codes: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Consume atomically marks a matching valid code as used and returns it.
// The conditional UPDATE is a single statement, so two concurrent attempts
// on the same code cannot both succeed; the loser sees no matching row and
// gets nil back.
func (r *otpRepository) Consume(ctx context.Context, email, code string) (*model.OtpCode, error) {
	otp := &model.OtpCode{}
	sql := `UPDATE otp_codes SET is_used = TRUE
            WHERE id = (
                SELECT id FROM otp_codes
                WHERE email = $1 AND code = $2 AND is_used = FALSE AND expires_at > NOW()
                ORDER BY created_at DESC
                LIMIT 1
                FOR UPDATE SKIP LOCKED
            )
            RETURNING id, email, code, expires_at, is_used, created_at`
	err := r.db.QueryRow(ctx, sql, email, code).Scan(
		&otp.ID, &otp.Email, &otp.Code, &otp.ExpiresAt, &otp.IsUsed, &otp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No valid matching code
		}
		return nil, fmt.Errorf("failed to consume otp code: %w", err)
	}
	return otp, nil
}
