// internal/store/cache_test.go
package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sow-engine/internal/common/logger"
)

// A broken cache must degrade to plain database reads, never fail them.
func TestGetProject_CacheUnavailableFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache, cacheMock := redismock.NewClientMock()
	store := New(db, cache, logger.NewTestLogger(t), 5*time.Minute)

	project := testProject()
	cacheMock.ExpectGet("project:" + project.ID).SetErr(assert.AnError)

	data, err := json.Marshal(&project)
	require.NoError(t, err)
	cacheMock.ExpectSet("project:"+project.ID, data, 5*time.Minute).SetVal("OK")

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id`).
		WithArgs(project.ID).
		WillReturnRows(projectRows(project))

	got, err := store.GetProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
