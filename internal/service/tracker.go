package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akalinin/go-worklog/internal/adapter"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/store"
	"github.com/akalinin/go-worklog/internal/utils"
	"github.com/akalinin/go-worklog/models"
)

type trackerService struct {
	records store.RecordStore
	remote  adapter.RemoteClient
	logger  *logger.Logger
}

func NewTrackerService(records store.RecordStore, remote adapter.RemoteClient, logger *logger.Logger) TrackerService {
	return &trackerService{records: records, remote: remote, logger: logger}
}

// CreateTimeEntry implements [TrackerService].
func (s *trackerService) CreateTimeEntry(ctx context.Context, entry models.TimeEntry) (models.Record, error) {
	if entry.StartedAt.IsZero() {
		return models.Record{}, ErrValidationNoStart
	}

	return s.createRecord(ctx, models.EntityTimeEntries, entry.ID, func(id string) any {
		entry.ID = id
		return entry
	})
}

// StopTimeEntry implements [TrackerService]. The record flips back to unsynced
// so the closed interval is re-pushed on the next pass.
func (s *trackerService) StopTimeEntry(ctx context.Context, id string, endedAt time.Time) (models.Record, error) {
	rec, err := s.records.GetRecord(ctx, models.EntityTimeEntries, id)
	if err != nil {
		return models.Record{}, err
	}

	var entry models.TimeEntry
	if err = json.Unmarshal(rec.Payload, &entry); err != nil {
		return models.Record{}, fmt.Errorf("decode time entry %s: %w", id, err)
	}
	if entry.EndedAt != nil {
		return models.Record{}, ErrTimeEntryAlreadyStopped
	}

	entry.EndedAt = &endedAt
	payload, err := json.Marshal(entry)
	if err != nil {
		return models.Record{}, fmt.Errorf("encode time entry %s: %w", id, err)
	}

	rec.Payload = payload
	rec.Synced = false
	rec.UpdatedAt = time.Now()

	if err = s.records.SaveRecords(ctx, rec); err != nil {
		return models.Record{}, err
	}

	return rec, nil
}

// RecordActivity implements [TrackerService].
func (s *trackerService) RecordActivity(ctx context.Context, activity models.ActivityLog) (models.Record, error) {
	if activity.TimeEntryID == "" {
		return models.Record{}, ErrValidationNoTimeEntry
	}
	if activity.RecordedAt.IsZero() {
		activity.RecordedAt = time.Now()
	}

	return s.createRecord(ctx, models.EntityActivityLogs, activity.ID, func(id string) any {
		activity.ID = id
		return activity
	})
}

// RecordScreenshot implements [TrackerService].
func (s *trackerService) RecordScreenshot(ctx context.Context, shot models.Screenshot) (models.Record, error) {
	if shot.TimeEntryID == "" {
		return models.Record{}, ErrValidationNoTimeEntry
	}
	if shot.CapturedAt.IsZero() {
		shot.CapturedAt = time.Now()
	}

	return s.createRecord(ctx, models.EntityScreenshots, shot.ID, func(id string) any {
		shot.ID = id
		return shot
	})
}

// CreateClient implements [TrackerService].
func (s *trackerService) CreateClient(ctx context.Context, client models.Client) (models.Record, error) {
	if strings.TrimSpace(client.Name) == "" {
		return models.Record{}, ErrValidationNoName
	}

	return s.createRecord(ctx, models.EntityClients, client.ID, func(id string) any {
		client.ID = id
		return client
	})
}

// CreateProject implements [TrackerService].
func (s *trackerService) CreateProject(ctx context.Context, project models.Project) (models.Record, error) {
	if strings.TrimSpace(project.Name) == "" {
		return models.Record{}, ErrValidationNoName
	}

	return s.createRecord(ctx, models.EntityProjects, project.ID, func(id string) any {
		project.ID = id
		return project
	})
}

// CreateTask implements [TrackerService].
func (s *trackerService) CreateTask(ctx context.Context, task models.Task) (models.Record, error) {
	if strings.TrimSpace(task.Title) == "" {
		return models.Record{}, ErrValidationNoName
	}

	return s.createRecord(ctx, models.EntityTasks, task.ID, func(id string) any {
		task.ID = id
		return task
	})
}

// ListEntities implements [TrackerService].
func (s *trackerService) ListEntities(ctx context.Context, entityType models.EntityType) ([]models.Record, error) {
	return s.records.ListRecords(ctx, entityType)
}

// OrganizationMembers implements [TrackerService].
func (s *trackerService) OrganizationMembers(ctx context.Context) ([]models.OrganizationMember, error) {
	recs, err := s.records.ListRecords(ctx, models.EntityOrganization)
	if err != nil {
		return nil, err
	}

	members := make([]models.OrganizationMember, 0, len(recs))
	for _, rec := range recs {
		var member models.OrganizationMember
		if err = json.Unmarshal(rec.Payload, &member); err != nil {
			return nil, fmt.Errorf("decode organization member %s: %w", rec.ID, err)
		}
		members = append(members, member)
	}

	return members, nil
}

// CurrentMember implements [TrackerService]. The user id comes from the bearer
// token's subject claim, so no extra credentials are needed locally.
func (s *trackerService) CurrentMember(ctx context.Context) (models.OrganizationMember, error) {
	userID, err := utils.ParseUserIDFromJWT(s.remote.Token())
	if err != nil {
		return models.OrganizationMember{}, fmt.Errorf("resolve identity from token: %w", err)
	}

	members, err := s.OrganizationMembers(ctx)
	if err != nil {
		return models.OrganizationMember{}, err
	}

	for _, member := range members {
		if member.UserID == userID {
			return member, nil
		}
	}

	return models.OrganizationMember{}, fmt.Errorf("%w: user_id=%d", ErrMemberNotFound, userID)
}

// createRecord assigns a fresh id when the entity has none, wraps the entity
// into an unsynced envelope and stores it. The entity id and the record id are
// always the same value.
func (s *trackerService) createRecord(ctx context.Context, entityType models.EntityType, id string, bind func(id string) any) (models.Record, error) {
	if id == "" {
		id = utils.NewRecordID()
	}

	payload, err := json.Marshal(bind(id))
	if err != nil {
		return models.Record{}, fmt.Errorf("encode %s payload: %w", entityType, err)
	}

	now := time.Now()
	rec := models.Record{
		ID:         id,
		EntityType: entityType,
		Payload:    payload,
		Synced:     false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.records.SaveRecords(ctx, rec); err != nil {
		return models.Record{}, err
	}

	return rec, nil
}
