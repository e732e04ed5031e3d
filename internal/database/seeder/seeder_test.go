package seeder

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"careergps/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (database.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return database.FromSQL(raw), mock
}

func expectColumns(mock sqlmock.Sqlmock, cols ...string) {
	rows := sqlmock.NewRows([]string{"column_name"})
	for _, c := range cols {
		rows.AddRow(c)
	}
	mock.ExpectQuery(regexp.QuoteMeta(columnsQuery)).WithArgs("careers").WillReturnRows(rows)
}

func TestCareersSeederInsertsEachCareer(t *testing.T) {
	db, mock := newMock(t)

	expectColumns(mock, "name", "created_at")
	mock.ExpectBegin()
	for _, name := range []string{"Data Scientist", "UI/UX Designer"} {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO careers (name) VALUES ($1) ON CONFLICT (name) DO NOTHING")).
			WithArgs(name).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := Runner{Seeders: Defaults([]string{"Data Scientist", " ", "UI/UX Designer"})}.Run(context.Background(), db)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareersSeederSchemaMismatch(t *testing.T) {
	db, mock := newMock(t)

	expectColumns(mock, "id")

	err := Runner{Seeders: Defaults([]string{"Data Scientist"})}.Run(context.Background(), db)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.ErrorContains(t, err, "careers lacks name, created_at")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareersSeederRollsBackOnError(t *testing.T) {
	db, mock := newMock(t)

	expectColumns(mock, "name", "created_at")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO careers").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := Runner{Seeders: []Seeder{CareersSeeder{Careers: []string{"Cloud Engineer"}}}}.Run(context.Background(), db)
	assert.ErrorContains(t, err, "seed careers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunnerNilDB(t *testing.T) {
	assert.ErrorIs(t, Runner{}.Run(context.Background(), nil), database.ErrNilDB)
}
