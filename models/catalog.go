package models

import "time"

// Client is a customer the user bills time against.
type Client struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
	Archived     bool   `json:"archived"`
}

// Project groups tasks under a client.
type Project struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id,omitempty"`
	Name     string `json:"name"`
	Archived bool   `json:"archived"`
}

// Task is a unit of work time entries are tracked against.
type Task struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id,omitempty"`
	Title     string     `json:"title"`
	Done      bool       `json:"done"`
	DueAt     *time.Time `json:"due_at,omitempty"`
}

// OrganizationMember is remote-owned membership data pulled from the server.
// The local copy is a mirror: it is never edited on the device.
type OrganizationMember struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         int64     `json:"user_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	JoinedAt       time.Time `json:"joined_at"`
}
