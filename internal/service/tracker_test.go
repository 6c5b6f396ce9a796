package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akalinin/go-worklog/internal/config"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/store"
	"github.com/akalinin/go-worklog/models"
)

func newTrackerHarness(t *testing.T) (TrackerService, *store.Storages, *fakeRemote) {
	t.Helper()

	storages, err := store.NewStorages(
		context.Background(),
		config.AgentStorage{DB: config.AgentDB{DSN: ":memory:"}},
		logger.Nop(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	remote := newFakeRemote()
	tracker := NewTrackerService(storages.Records, remote, logger.Nop())

	return tracker, storages, remote
}

func TestTrackerService_CreateTimeEntry(t *testing.T) {
	tracker, storages, _ := newTrackerHarness(t)
	ctx := context.Background()

	_, err := tracker.CreateTimeEntry(ctx, models.TimeEntry{Description: "no start"})
	assert.ErrorIs(t, err, ErrValidationNoStart)

	rec, err := tracker.CreateTimeEntry(ctx, models.TimeEntry{
		Description: "refactor parser",
		StartedAt:   time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Synced)

	var entry models.TimeEntry
	require.NoError(t, json.Unmarshal(rec.Payload, &entry))
	assert.Equal(t, rec.ID, entry.ID, "entity id and record id are the same value")

	count, err := storages.Records.CountUnsynced(ctx, models.EntityTimeEntries)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestTrackerService_StopTimeEntry(t *testing.T) {
	tracker, storages, _ := newTrackerHarness(t)
	ctx := context.Background()

	rec, err := tracker.CreateTimeEntry(ctx, models.TimeEntry{StartedAt: time.Now()})
	require.NoError(t, err)

	// pretend a pass already shipped it
	_, err = storages.Records.MarkSynced(ctx, models.EntityTimeEntries, rec.ID)
	require.NoError(t, err)

	endedAt := time.Now().Add(time.Hour)
	stopped, err := tracker.StopTimeEntry(ctx, rec.ID, endedAt)
	require.NoError(t, err)
	assert.False(t, stopped.Synced, "a stopped entry is re-queued for sync")

	var entry models.TimeEntry
	require.NoError(t, json.Unmarshal(stopped.Payload, &entry))
	require.NotNil(t, entry.EndedAt)

	count, err := storages.Records.CountUnsynced(ctx, models.EntityTimeEntries)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = tracker.StopTimeEntry(ctx, rec.ID, endedAt)
	assert.ErrorIs(t, err, ErrTimeEntryAlreadyStopped)

	_, err = tracker.StopTimeEntry(ctx, "missing-id", endedAt)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestTrackerService_RecordActivity(t *testing.T) {
	tracker, _, _ := newTrackerHarness(t)
	ctx := context.Background()

	_, err := tracker.RecordActivity(ctx, models.ActivityLog{KeyboardEvents: 12})
	assert.ErrorIs(t, err, ErrValidationNoTimeEntry)

	rec, err := tracker.RecordActivity(ctx, models.ActivityLog{
		TimeEntryID:    "entry-1",
		KeyboardEvents: 12,
		MouseEvents:    40,
		AppName:        "goland",
	})
	require.NoError(t, err)

	var activity models.ActivityLog
	require.NoError(t, json.Unmarshal(rec.Payload, &activity))
	assert.False(t, activity.RecordedAt.IsZero(), "missing sample time defaults to now")
}

func TestTrackerService_CatalogValidation(t *testing.T) {
	tracker, _, _ := newTrackerHarness(t)
	ctx := context.Background()

	_, err := tracker.CreateClient(ctx, models.Client{Name: "   "})
	assert.ErrorIs(t, err, ErrValidationNoName)
	_, err = tracker.CreateProject(ctx, models.Project{})
	assert.ErrorIs(t, err, ErrValidationNoName)
	_, err = tracker.CreateTask(ctx, models.Task{})
	assert.ErrorIs(t, err, ErrValidationNoName)

	clientRec, err := tracker.CreateClient(ctx, models.Client{Name: "ACME"})
	require.NoError(t, err)
	projectRec, err := tracker.CreateProject(ctx, models.Project{Name: "Website", ClientID: clientRec.ID})
	require.NoError(t, err)
	_, err = tracker.CreateTask(ctx, models.Task{Title: "Landing page", ProjectID: projectRec.ID})
	require.NoError(t, err)

	recs, err := tracker.ListEntities(ctx, models.EntityProjects)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestTrackerService_OrganizationMembers(t *testing.T) {
	tracker, storages, remote := newTrackerHarness(t)
	ctx := context.Background()

	members := []models.OrganizationMember{
		{ID: "m-1", UserID: 7, FullName: "Alice", Role: "admin"},
		{ID: "m-2", UserID: 42, FullName: "Bob", Role: "member"},
	}
	mirror := make([]models.Record, 0, len(members))
	for _, m := range members {
		payload, err := json.Marshal(m)
		require.NoError(t, err)
		mirror = append(mirror, models.Record{ID: m.ID, EntityType: models.EntityOrganization, Payload: payload})
	}
	require.NoError(t, storages.Records.OverwriteMirrored(ctx, models.EntityOrganization, mirror))

	got, err := tracker.OrganizationMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	remote.SetToken(token)

	me, err := tracker.CurrentMember(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bob", me.FullName)

	missing, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "99"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	remote.SetToken(missing)

	_, err = tracker.CurrentMember(ctx)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
