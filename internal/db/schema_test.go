package db_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Kepler-Interactive/CompAI/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestEnsureSchema_QuotesIdentifier(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	d, err := db.FromConn(conn, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE SCHEMA IF NOT EXISTS "framework_editor"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.EnsureSchema(d, "framework_editor"))
	require.NoError(t, mock.ExpectationsWereMet())
}
