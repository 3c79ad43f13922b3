package repository

import (
	"context"
	"testing"
	"time"

	"news_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOtpMock(t *testing.T) (pgxmock.PgxPoolIface, OtpRepository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewOtpRepository(mock)
}

func TestOtpRepository_Create(t *testing.T) {
	mock, repo := newOtpMock(t)

	now := time.Now()
	otp := &model.OtpCode{
		Email:     "a@x.com",
		Code:      "042137",
		ExpiresAt: now.Add(model.OtpValidityWindow),
		CreatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO otp_codes").
		WithArgs(otp.Email, otp.Code, otp.ExpiresAt, otp.IsUsed, otp.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))

	err := repo.Create(context.Background(), otp)
	assert.NoError(t, err)
	assert.Equal(t, 11, otp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOtpRepository_DeleteExpired(t *testing.T) {
	mock, repo := newOtpMock(t)

	mock.ExpectExec("DELETE FROM otp_codes").
		WithArgs("a@x.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err := repo.DeleteExpired(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOtpRepository_Consume(t *testing.T) {
	mock, repo := newOtpMock(t)

	now := time.Now()
	mock.ExpectQuery("UPDATE otp_codes SET is_used").
		WithArgs("a@x.com", "042137").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "code", "expires_at", "is_used", "created_at"}).
			AddRow(11, "a@x.com", "042137", now.Add(time.Minute), true, now))

	otp, err := repo.Consume(context.Background(), "a@x.com", "042137")
	assert.NoError(t, err)
	require.NotNil(t, otp)
	assert.True(t, otp.IsUsed)
	assert.Equal(t, "042137", otp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A second consume attempt matches no row; the repository reports "no valid
// code" rather than an error.
func TestOtpRepository_Consume_AlreadyUsed(t *testing.T) {
	mock, repo := newOtpMock(t)

	mock.ExpectQuery("UPDATE otp_codes SET is_used").
		WithArgs("a@x.com", "042137").
		WillReturnError(pgx.ErrNoRows)

	otp, err := repo.Consume(context.Background(), "a@x.com", "042137")
	assert.NoError(t, err)
	assert.Nil(t, otp)
	assert.NoError(t, mock.ExpectationsWereMet())
}
