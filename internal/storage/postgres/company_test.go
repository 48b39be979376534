package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentionwatch/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func companyRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "cleaned_name", "status", "created_at", "updated_at"}).
		AddRow(1, "Alpha AI", "alpha ai", "active", now, now).
		AddRow(2, "Beta Labs", "beta labs", "active", now, now)
}

func TestCompanyStore_ListActive(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCompanyStore(db)

	mock.ExpectQuery("SELECT id, name, cleaned_name, status, created_at, updated_at FROM companies WHERE status").
		WithArgs(domain.StatusActive).
		WillReturnRows(companyRows())

	companies, err := store.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "alpha ai", companies[0].CleanedName)
	assert.Equal(t, "beta labs", companies[1].CleanedName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyStore_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCompanyStore(db)

	mock.ExpectQuery("SELECT id, name, cleaned_name, status, created_at, updated_at FROM companies WHERE id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	company, err := store.GetByID(context.Background(), 42)

	assert.Nil(t, company)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyStore_CreateBatch_SkipsConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCompanyStore(db)

	companies := []domain.Company{
		{Name: "Alpha AI", CleanedName: "alpha ai"},
		{Name: "Beta Labs", CleanedName: "beta labs"},
	}

	mock.ExpectExec("INSERT INTO companies").
		WithArgs("Alpha AI", "alpha ai", domain.StatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// already tracked, ON CONFLICT swallows the row
	mock.ExpectExec("INSERT INTO companies").
		WithArgs("Beta Labs", "beta labs", domain.StatusActive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := store.CreateBatch(context.Background(), companies)

	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyStore_CreateBatch_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCompanyStore(db)

	inserted, err := store.CreateBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyStore_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCompanyStore(db)

	mock.ExpectExec("UPDATE companies SET status").
		WithArgs(int64(42), domain.StatusInactive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateStatus(context.Background(), 42, domain.StatusInactive)

	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyStore_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewCompanyStore(db)

	mock.ExpectExec("DELETE FROM companies WHERE id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
