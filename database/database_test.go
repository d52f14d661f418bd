package database

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/notifier"
)

type testEnv struct {
	db      Database
	backend *MemoryBackend
	signals *atomic.Int64
}

func newTestEnv(t *testing.T, opts ...Option) testEnv {
	t.Helper()
	backend := NewMemoryBackend()
	n := notifier.New()
	signals := &atomic.Int64{}
	unsubscribe := n.Subscribe(func() { signals.Add(1) })
	t.Cleanup(unsubscribe)
	return testEnv{db: New(backend, n, opts...), backend: backend, signals: signals}
}

func newSeededEnv(t *testing.T, opts ...Option) testEnv {
	t.Helper()
	env := newTestEnv(t, opts...)
	seeded, err := env.db.Init()
	require.NoError(t, err)
	require.True(t, seeded)
	env.signals.Store(0)
	return env
}

func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// flakyBackend fails writes on demand and otherwise behaves like memory
type flakyBackend struct {
	*MemoryBackend
	failSet  atomic.Bool
	failRead atomic.Bool
}

func (b *flakyBackend) Get(key string) (string, bool, error) {
	if b.failRead.Load() {
		return "", false, errors.New("backend offline")
	}
	return b.MemoryBackend.Get(key)
}

func (b *flakyBackend) Set(key, value string) error {
	if b.failSet.Load() {
		return errors.New("exceeded the quota")
	}
	return b.MemoryBackend.Set(key, value)
}

func TestInitSeedsDefaultsOnce(t *testing.T) {
	env := newTestEnv(t)

	seeded, err := env.db.Init()
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.EqualValues(t, 1, env.signals.Load())

	projects, err := env.db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 4)
	titles := make([]string, len(projects))
	for i, p := range projects {
		titles[i] = p.Title
		assert.EqualValues(t, i+1, p.ID)
	}
	assert.Equal(t, []string{"EcoTrack AI", "Nexus Commerce", "Visionary UI", "Neural Scribe"}, titles)

	skills, err := env.db.SkillRepo().FindAll()
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultSkills(), skills); diff != "" {
		t.Errorf("seeded skills mismatch (-want +got):\n%s", diff)
	}

	experiences, err := env.db.ExperienceRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, experiences)

	meta, err := env.db.MetadataRepo().Get()
	require.NoError(t, err)
	assert.Equal(t, "Alex Rivera", meta.Name)
	assert.Equal(t, seededHeroImageURL, meta.HeroImageURL)

	before := env.backend.Snapshot()
	seeded, err = env.db.Init()
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, before, env.backend.Snapshot())
	assert.EqualValues(t, 1, env.signals.Load())
}

func TestInitDoesNotOverwriteEdits(t *testing.T) {
	env := newSeededEnv(t)
	require.NoError(t, env.db.ProjectRepo().Delete(1))

	seeded, err := env.db.Init()
	require.NoError(t, err)
	assert.False(t, seeded)

	projects, err := env.db.ProjectRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, projects, 3)
}

func TestInitSeedVersionMarker(t *testing.T) {
	tests := []struct {
		name       string
		marker     string
		wantSeeded bool
	}{
		{name: "older version", marker: "3", wantSeeded: true},
		{name: "legacy boolean marker", marker: "true", wantSeeded: true},
		{name: "current version", marker: fmt.Sprint(SeedVersion), wantSeeded: false},
		{name: "newer version", marker: fmt.Sprint(SeedVersion + 1), wantSeeded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			require.NoError(t, env.backend.Set(KeySeedVersion, tt.marker))
			require.NoError(t, env.backend.Set(KeyProjects, "[]"))

			seeded, err := env.db.Init()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeeded, seeded)

			projects, err := env.db.ProjectRepo().FindAll()
			require.NoError(t, err)
			if tt.wantSeeded {
				assert.Len(t, projects, 4)
				marker, _, _ := env.backend.Get(KeySeedVersion)
				assert.Equal(t, fmt.Sprint(SeedVersion), marker)
			} else {
				assert.Empty(t, projects)
				assert.Zero(t, env.signals.Load())
			}
		})
	}
}

func TestCreateThenDeleteRestoresList(t *testing.T) {
	env := newSeededEnv(t)
	before, _, _ := env.backend.Get(KeyProjects)

	created, err := env.db.ProjectRepo().Add(models.Project{Title: "X", Tags: []string{}, TechStack: []string{}})
	require.NoError(t, err)

	projects, err := env.db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 5)
	assert.Equal(t, created, projects[0])
	assert.Equal(t, "X", projects[0].Title)

	require.NoError(t, env.db.ProjectRepo().Delete(created.ID))
	after, _, _ := env.backend.Get(KeyProjects)
	assert.Equal(t, before, after)
	assert.EqualValues(t, 2, env.signals.Load())
}

func TestUpdateReplacesOnlyMatchingRecord(t *testing.T) {
	env := newSeededEnv(t)

	skill, err := env.db.SkillRepo().FindByID(3)
	require.NoError(t, err)
	require.NotNil(t, skill)
	skill.Level = 99

	found, err := env.db.SkillRepo().Update(*skill)
	require.NoError(t, err)
	assert.True(t, found)
	assert.EqualValues(t, 1, env.signals.Load())

	skills, err := env.db.SkillRepo().FindAll()
	require.NoError(t, err)
	want := DefaultSkills()
	want[2].Level = 99
	if diff := cmp.Diff(want, skills); diff != "" {
		t.Errorf("skills after update (-want +got):\n%s", diff)
	}
}

func TestUpdateOfAbsentRecordIsSilent(t *testing.T) {
	env := newSeededEnv(t)
	before := env.backend.Snapshot()

	found, err := env.db.ProjectRepo().Update(models.Project{ID: 424242, Title: "ghost"})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, env.backend.Snapshot())
	assert.Zero(t, env.signals.Load())
}

func TestDeleteAbsentIDLeavesBytesUnchanged(t *testing.T) {
	env := newSeededEnv(t)
	before := env.backend.Snapshot()

	require.NoError(t, env.db.ProjectRepo().Delete(999))
	require.NoError(t, env.db.SkillRepo().Delete(999))
	require.NoError(t, env.db.MessageRepo().Delete(999))

	assert.Equal(t, before, env.backend.Snapshot())
}

func TestDeleteNeverCreatesOrRepairsSlots(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.backend.Set(KeyProjects, "{not json"))
	before := env.backend.Snapshot()

	require.NoError(t, env.db.ExperienceRepo().Delete(7))
	require.NoError(t, env.db.ProjectRepo().Delete(7))

	assert.Equal(t, before, env.backend.Snapshot())
	assert.Equal(t, int64(2), env.signals.Load())
}

func TestStoredListsNeverHoldNull(t *testing.T) {
	env := newTestEnv(t)

	project, err := env.db.ProjectRepo().Add(models.Project{Title: "X"})
	require.NoError(t, err)
	assert.NotNil(t, project.Tags)
	_, err = env.db.ProjectRepo().Update(models.Project{ID: project.ID, Title: "Y"})
	require.NoError(t, err)

	_, err = env.db.ExperienceRepo().Add(models.Experience{Company: "C", Role: models.RoleDesigner})
	require.NoError(t, err)

	slots := env.backend.Snapshot()
	assert.Contains(t, slots[KeyProjects], `"tags":[]`)
	assert.Contains(t, slots[KeyProjects], `"techStack":[]`)
	assert.NotContains(t, slots[KeyProjects], "null")
	assert.Contains(t, slots[KeyExperiences], `"technologies":[]`)
}

func TestEveryMutationSignalsExactlyOnce(t *testing.T) {
	env := newSeededEnv(t)
	db := env.db

	steps := []struct {
		name string
		run  func() error
	}{
		{"add project", func() error { _, err := db.ProjectRepo().Add(models.Project{Title: "p"}); return err }},
		{"update project", func() error { _, err := db.ProjectRepo().Update(models.Project{ID: 1, Title: "p1"}); return err }},
		{"delete project", func() error { return db.ProjectRepo().Delete(2) }},
		{"add experience", func() error {
			_, err := db.ExperienceRepo().Add(models.Experience{Company: "Acme", Role: models.RoleDesigner})
			return err
		}},
		{"add skill", func() error {
			_, err := db.SkillRepo().Add(models.Skill{Name: "Go", Level: 90, Category: models.SkillCategoryBackend})
			return err
		}},
		{"add message", func() error {
			_, err := db.MessageRepo().Add(models.ContactSubmission{Name: "a", Email: "a@b.c", Subject: "s", Message: "m"})
			return err
		}},
		{"update metadata", func() error { return db.MetadataRepo().Update(models.PortfolioMetadata{Name: "N"}) }},
		{"save cv", func() error {
			return db.CVRepo().Save(models.CVData{Name: "r.pdf", Base64: "data:application/pdf;base64,AA==", Type: "application/pdf"})
		}},
		{"clear cv", func() error { return db.CVRepo().Clear() }},
	}

	for _, step := range steps {
		before := env.signals.Load()
		require.NoError(t, step.run(), step.name)
		assert.EqualValues(t, before+1, env.signals.Load(), step.name)
	}
}

func TestFailedWriteDoesNotSignal(t *testing.T) {
	backend := &flakyBackend{MemoryBackend: NewMemoryBackend()}
	n := notifier.New()
	var signals atomic.Int64
	defer n.Subscribe(func() { signals.Add(1) })()
	db := New(backend, n)

	_, err := db.Init()
	require.NoError(t, err)
	signals.Store(0)
	before := backend.Snapshot()

	backend.failSet.Store(true)
	_, err = db.ProjectRepo().Add(models.Project{Title: "X"})
	require.Error(t, err)
	assert.True(t, errs.IsStorageFaultError(err))

	err = db.MetadataRepo().Update(models.PortfolioMetadata{Name: "N"})
	require.Error(t, err)
	assert.True(t, errs.IsStorageQuotaFullError(errs.NewDatabaseError("update", "profile", err)))

	assert.Zero(t, signals.Load())
	assert.Equal(t, before, backend.Snapshot())
}

func TestReadFaultAbortsMutation(t *testing.T) {
	backend := &flakyBackend{MemoryBackend: NewMemoryBackend()}
	db := New(backend, notifier.New())
	_, err := db.Init()
	require.NoError(t, err)
	before := backend.Snapshot()

	backend.failRead.Store(true)
	err = db.ProjectRepo().Delete(1)
	require.Error(t, err)
	assert.True(t, errs.IsStorageFaultError(err))
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to read projects", apiErr.Details)

	backend.failRead.Store(false)
	assert.Equal(t, before, backend.Snapshot())
}

func TestUnparseableSlotsReadAsAbsent(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.backend.Set(KeyProjects, "{not json"))
	require.NoError(t, env.backend.Set(KeySkills, `{"id":1}`))
	require.NoError(t, env.backend.Set(KeyMetadata, "garbage"))
	require.NoError(t, env.backend.Set(KeyCV, "[1,2]"))

	projects, err := env.db.ProjectRepo().FindAll()
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)

	skills, err := env.db.SkillRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, skills)

	meta, err := env.db.MetadataRepo().Get()
	require.NoError(t, err)
	assert.Equal(t, DefaultMetadata(), meta)
	assert.Empty(t, meta.HeroImageURL)

	cv, err := env.db.CVRepo().Get()
	require.NoError(t, err)
	assert.Nil(t, cv)
}

func TestEmptyStoreReadsEmptyCollections(t *testing.T) {
	env := newTestEnv(t)

	projects, err := env.db.ProjectRepo().FindAll()
	require.NoError(t, err)
	assert.Equal(t, []models.Project{}, projects)

	project, err := env.db.ProjectRepo().FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, project)

	messages, err := env.db.MessageRepo().FindAll()
	require.NoError(t, err)
	assert.Equal(t, []models.ContactSubmission{}, messages)
}

func TestCVAbsentThenSavedThenCleared(t *testing.T) {
	env := newSeededEnv(t)

	cv, err := env.db.CVRepo().Get()
	require.NoError(t, err)
	assert.Nil(t, cv)

	want := models.CVData{Name: "r.pdf", Base64: "data:application/pdf;base64,JVBERi0=", Type: "application/pdf"}
	require.NoError(t, env.db.CVRepo().Save(want))

	cv, err = env.db.CVRepo().Get()
	require.NoError(t, err)
	require.NotNil(t, cv)
	assert.Equal(t, want, *cv)

	require.NoError(t, env.db.CVRepo().Clear())
	cv, err = env.db.CVRepo().Get()
	require.NoError(t, err)
	assert.Nil(t, cv)
}

func TestMessageGetsServerTimestamp(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	env := newSeededEnv(t, WithClock(frozenClock(at)))

	first, err := env.db.MessageRepo().Add(models.ContactSubmission{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello", Timestamp: "forged",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T12:00:00.000Z", first.Timestamp)

	second, err := env.db.MessageRepo().Add(models.ContactSubmission{Name: "Bob", Email: "bob@example.com", Subject: "Yo", Message: "Hey"})
	require.NoError(t, err)

	messages, err := env.db.MessageRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID)
	assert.Equal(t, first.ID, messages[1].ID)
}

func TestRapidCreatesGetDistinctIDs(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	env := newSeededEnv(t, WithClock(frozenClock(at)))

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		p, err := env.db.ProjectRepo().Add(models.Project{Title: fmt.Sprintf("p%d", i)})
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		assert.GreaterOrEqual(t, p.ID, at.UnixMilli())
		seen[p.ID] = true
	}
}

func TestIDsStayAboveExistingRecords(t *testing.T) {
	// a clock behind the stored ids must not produce a collision
	env := newTestEnv(t, WithClock(frozenClock(time.UnixMilli(5))))
	require.NoError(t, env.backend.Set(KeySkills, `[{"id":100,"name":"a","level":1,"category":"AI"}]`))

	s, err := env.db.SkillRepo().Add(models.Skill{Name: "b", Level: 2, Category: models.SkillCategoryAI})
	require.NoError(t, err)
	assert.EqualValues(t, 101, s.ID)
}

func TestConcurrentCreatesAreAllKept(t *testing.T) {
	env := newSeededEnv(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.db.ExperienceRepo().Add(models.Experience{Company: fmt.Sprintf("c%d", i), Role: models.RoleDesigner})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	experiences, err := env.db.ExperienceRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, experiences, 20)
	assert.EqualValues(t, 20, env.signals.Load())

	ids := make(map[int64]bool)
	for _, e := range experiences {
		ids[e.ID] = true
	}
	assert.Len(t, ids, 20)
}

func TestSkillsAppendProjectsPrepend(t *testing.T) {
	env := newSeededEnv(t)

	skill, err := env.db.SkillRepo().Add(models.Skill{Name: "Go", Level: 90, Category: models.SkillCategoryBackend})
	require.NoError(t, err)
	skills, err := env.db.SkillRepo().FindAll()
	require.NoError(t, err)
	assert.Equal(t, skill, skills[len(skills)-1])

	project, err := env.db.ProjectRepo().Add(models.Project{Title: "New"})
	require.NoError(t, err)
	projects, err := env.db.ProjectRepo().FindAll()
	require.NoError(t, err)
	assert.Equal(t, project.ID, projects[0].ID)
}

func TestKeyPrefixNamespacesSlots(t *testing.T) {
	env := newSeededEnv(t, WithKeyPrefix("portfolio:"))

	for key := range env.backend.Snapshot() {
		assert.Contains(t, key, "portfolio:")
	}
	_, found, _ := env.backend.Get("portfolio:" + KeyProjects)
	assert.True(t, found)
}

func TestSessionFlag(t *testing.T) {
	env := newTestEnv(t)
	session := env.db.SessionRepo()

	granted, err := session.IsGranted()
	require.NoError(t, err)
	assert.False(t, granted)

	require.NoError(t, session.Grant())
	granted, err = session.IsGranted()
	require.NoError(t, err)
	assert.True(t, granted)
	raw, _, _ := env.backend.Get(KeyIsAdmin)
	assert.Equal(t, "true", raw)

	require.NoError(t, session.Revoke())
	granted, err = session.IsGranted()
	require.NoError(t, err)
	assert.False(t, granted)

	assert.Zero(t, env.signals.Load())
}
