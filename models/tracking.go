package models

import "time"

// TimeEntry is a contiguous interval of tracked work on a task.
type TimeEntry struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	Description string     `json:"description,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

// ActivityLog is a periodic input-activity sample recorded while a time entry
// is running.
type ActivityLog struct {
	ID          string    `json:"id"`
	TimeEntryID string    `json:"time_entry_id"`
	RecordedAt  time.Time `json:"recorded_at"`

	// KeyboardEvents and MouseEvents count input events inside the sampling
	// window; AppName and WindowTitle describe the foreground application.
	KeyboardEvents int    `json:"keyboard_events"`
	MouseEvents    int    `json:"mouse_events"`
	AppName        string `json:"app_name,omitempty"`
	WindowTitle    string `json:"window_title,omitempty"`
}

// Screenshot references a captured screen image stored on the local disk.
// Only the metadata is synchronized through the record envelope; the image
// bytes are uploaded out of band by the capture subsystem.
type Screenshot struct {
	ID          string    `json:"id"`
	TimeEntryID string    `json:"time_entry_id"`
	CapturedAt  time.Time `json:"captured_at"`
	Path        string    `json:"path"`
	Blurred     bool      `json:"blurred"`
}
