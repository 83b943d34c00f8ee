package event

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/smartretail/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockJournal(t *testing.T) (*Journal, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewJournal(gormDB, zap.NewNop()), mock, mockDB
}

func TestJournalRecord(t *testing.T) {
	t.Run("appends one entry per event", func(t *testing.T) {
		journal, mock, mockDB := newMockJournal(t)
		defer mockDB.Close()

		first := shared.NewBaseDomainEvent("ItemAdded", uuid.New(), "Item")
		second := shared.NewBaseDomainEvent("SaleRecorded", uuid.New(), "SaleRecord")

		mock.ExpectQuery(`INSERT INTO "journal_entries"`).
			WillReturnRows(sqlmock.NewRows([]string{"sequence"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "journal_entries"`).
			WillReturnRows(sqlmock.NewRows([]string{"sequence"}).AddRow(2))

		err := journal.Record(context.Background(), &first, &second)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no events is a no-op", func(t *testing.T) {
		journal, mock, mockDB := newMockJournal(t)
		defer mockDB.Close()

		require.NoError(t, journal.Record(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJournalEntries(t *testing.T) {
	journal, mock, mockDB := newMockJournal(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"sequence", "event_id", "event_type", "aggregate_id", "aggregate_type", "payload"}).
		AddRow(3, uuid.New(), "ItemAdded", uuid.New(), "Item", "{}").
		AddRow(4, uuid.New(), "SaleRecorded", uuid.New(), "SaleRecord", "{}")

	mock.ExpectQuery(`SELECT \* FROM "journal_entries" WHERE sequence > \$1 ORDER BY sequence ASC LIMIT .*`).
		WithArgs(int64(2), 10).
		WillReturnRows(rows)

	entries, err := journal.Entries(context.Background(), 2, 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(3), entries[0].Sequence)
	assert.Equal(t, "ItemAdded", entries[0].EventType)
	assert.Equal(t, int64(4), entries[1].Sequence)
}
