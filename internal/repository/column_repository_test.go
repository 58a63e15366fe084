package repository_test

import (
	"context"
	"testing"

	"trialboard/internal/board"
	"trialboard/internal/model"
	"trialboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestColumnRepository_List(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "columns" WHERE configured = \$1 ORDER BY position`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "position", "configured"}).
			AddRow("planning", "Planning", "#64748b", 0, true).
			AddRow("regulatory", "Regulatory", "#f59e0b", 1, true))

	// Act
	columns, err := repo.List(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []model.Column{
		{ID: "planning", Name: "Planning", Color: "#64748b", Position: 0, Configured: true},
		{ID: "regulatory", Name: "Regulatory", Color: "#f59e0b", Position: 1, Configured: true},
	}, columns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_Sync(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "columns" SET "configured"=\$1 WHERE configured = \$2`).
		WithArgs(false, true).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "columns" .* ON CONFLICT \("id"\) DO UPDATE SET .*"configured"="excluded"."configured"`).
		WithArgs("planning", "Planning", "#64748b", 0, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "columns" .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WithArgs("study", "Study", "#22c55e", 1, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.Sync(context.Background(), []model.Column{
		{ID: "planning", Name: "Planning", Color: "#64748b", Position: 9},
		{ID: "study", Name: "Study", Color: "#22c55e"},
	})

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A column dropped from the configuration is unlisted by the next Sync and
// no longer returned, so its tasks fall off the board as orphans.
func TestColumnRepository_SyncUnlistsRemovedColumn(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "columns" SET "configured"=\$1 WHERE configured = \$2`).
		WithArgs(false, true).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO "columns" .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WithArgs("planning", "Planning", "", 0, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "columns" WHERE configured = \$1 ORDER BY position`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "position", "configured"}).
			AddRow("planning", "Planning", "", 0, true))

	mock.ExpectQuery(`SELECT \* FROM "columns" WHERE id = \$1 AND configured = \$2 .*LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "position", "configured"}))

	// Act
	syncErr := repo.Sync(ctx, []model.Column{{ID: "planning", Name: "Planning"}})
	columns, listErr := repo.List(ctx)
	legacy, getErr := repo.GetByID(ctx, "legacy")

	// Assert
	assert.NoError(t, syncErr)
	assert.NoError(t, listErr)
	assert.NoError(t, getErr)
	assert.Equal(t, []model.Column{{ID: "planning", Name: "Planning", Position: 0, Configured: true}}, columns)
	assert.Nil(t, legacy)

	b := board.New(columns, []model.Task{
		{ID: "1", ColumnID: "planning"},
		{ID: "2", ColumnID: "legacy"},
	})
	assert.Equal(t, []string{"2"}, b.Orphans())
	assert.Len(t, b.Lanes(), 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
