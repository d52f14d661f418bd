package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/notifier"
)

func testKVRepo(t *testing.T) *KVRepo {
	t.Helper()
	db, err := openSQLite(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	repo, err := NewKVRepo(db)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := repo.GetDB().DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return repo
}

func TestKVRepoRoundTrip(t *testing.T) {
	repo := testKVRepo(t)

	_, found, err := repo.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set("projects", `[{"id":1}]`))
	value, found, err := repo.Get("projects")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, value)

	require.NoError(t, repo.Set("projects", `[]`))
	value, _, err = repo.Get("projects")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	var count int64
	require.NoError(t, repo.GetDB().Model(&models.KVEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.Delete("projects"))
	require.NoError(t, repo.Delete("projects"))
	_, found, err = repo.Get("projects")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVRepoKeepsValueBytes(t *testing.T) {
	repo := testKVRepo(t)
	// key order and spacing must survive, unlike a jsonb column
	raw := `{"name":"A",  "baseBio":"x","email":"e"}`
	require.NoError(t, repo.Set("metadata", raw))

	value, _, err := repo.Get("metadata")
	require.NoError(t, err)
	assert.Equal(t, raw, value)
}

func TestDatabaseOverSQLite(t *testing.T) {
	repo := testKVRepo(t)
	db := New(repo, notifier.New())

	seeded, err := db.Init()
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = db.Init()
	require.NoError(t, err)
	assert.False(t, seeded)

	created, err := db.ProjectRepo().Add(models.Project{Title: "Stored in SQLite"})
	require.NoError(t, err)

	got, err := db.ProjectRepo().FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Stored in SQLite", got.Title)
}

func TestOpenMemoryAndUnknownBackends(t *testing.T) {
	backend, closeFn, err := Open(map[string]string{"STORE_BACKEND": "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, backend)
	assert.NoError(t, closeFn())

	_, _, err = Open(map[string]string{"STORE_BACKEND": "etcd"})
	require.Error(t, err)
}

func TestOpenSQLiteBackend(t *testing.T) {
	backend, closeFn, err := Open(map[string]string{
		"STORE_BACKEND": "sqlite",
		"SQLITE_PATH":   filepath.Join(t.TempDir(), "nested", "portfolio.db"),
	})
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, backend.Set("k", "v"))
	value, found, err := backend.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestPostgresDSN(t *testing.T) {
	assert.Equal(t, "postgres://u@h/db", postgresDSN(map[string]string{"DATABASE_URL": "postgres://u@h/db"}))
	assert.Equal(t,
		"host=h user=u password=p dbname=d port=5432 sslmode=require",
		postgresDSN(map[string]string{
			"SUPABASE_DB_HOST":     "h",
			"SUPABASE_DB_USER":     "u",
			"SUPABASE_DB_PASSWORD": "p",
			"SUPABASE_DB_NAME":     "d",
		}))
}
