package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newSqlmockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestUserReadRepository_GetByID_QueryError(t *testing.T) {
	db, mock := newSqlmockDB(t)

	mock.ExpectQuery("SELECT user_id, username, email").
		WillReturnError(errors.New("connection reset"))

	user, err := NewUserReadRepository(db).GetByID(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_SetReferralCode_ExecError(t *testing.T) {
	db, mock := newSqlmockDB(t)

	mock.ExpectExec("UPDATE users").
		WillReturnError(errors.New("connection reset"))

	err := NewUserWriteRepository(db).SetReferralCode(context.Background(), uuid.New(), "AB12C")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
