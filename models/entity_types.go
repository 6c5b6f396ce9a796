package models

// EntityType identifies a category of synchronizable record.
type EntityType string

const (
	EntityTimeEntries  EntityType = "time_entries"
	EntityActivityLogs EntityType = "activity_logs"
	EntityScreenshots  EntityType = "screenshots"
	EntityClients      EntityType = "clients"
	EntityProjects     EntityType = "projects"
	EntityTasks        EntityType = "tasks"

	// EntityOrganization is remote-owned data (membership, roles). It is never
	// authored locally and is mirrored one way from the server.
	EntityOrganization EntityType = "organization"
)

// PushEntityTypes lists the locally-authored entity types in the order the
// coordinator registers their strategies.
func PushEntityTypes() []EntityType {
	return []EntityType{
		EntityTimeEntries,
		EntityActivityLogs,
		EntityScreenshots,
		EntityClients,
		EntityProjects,
		EntityTasks,
	}
}

// AllEntityTypes returns every known entity type, push entities first.
func AllEntityTypes() []EntityType {
	return append(PushEntityTypes(), EntityOrganization)
}

// ParseEntityType converts a raw string (e.g. a URL path segment) into an
// EntityType. The second return value is false for unknown values.
func ParseEntityType(raw string) (EntityType, bool) {
	for _, et := range AllEntityTypes() {
		if string(et) == raw {
			return et, true
		}
	}
	return "", false
}
