package entity

// AnnouncementType distinguishes routine notices from alerts.
type AnnouncementType string

const (
	AnnouncementInfo  AnnouncementType = "info"
	AnnouncementAlert AnnouncementType = "alert"
)

// Announcement is a feria-wide notice shown above the directory,
// e.g. a suspension for rain. Seeded, never created at runtime.
type Announcement struct {
	ID      string
	Title   string
	Message string
	Type    AnnouncementType
	Date    string
}
