package store

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/migrations"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
	})

	return NewDB(conn, migrations.DialectSQLite, logger.Nop()), mock
}

func bagRow(id int64, name string, frozen bool) []driver.Value {
	return []driver.Value{id, name, "filter", "Square Mile", "Ethiopia", "", "", "2024-01-01", 340, frozen}
}

func vialRow(id int64, bagID any, vials int) []driver.Value {
	return []driver.Value{id, bagID, "Yirgacheffe", "filter", "Square Mile", "Ethiopia", "", "", vials, 85, "2024-02-01"}
}
