package domain

import (
	"time"
)

var (
	MessageSuccessGetMigrations = "success get migration status"
	MessageFailedGetMigrations  = "failed to get migration status"
)

type (
	MigrationStatus struct {
		Filename  string     `json:"filename"`
		Applied   bool       `json:"applied"`
		AppliedAt *time.Time `json:"applied_at,omitempty"`
	}

	MigrationStatusResponse struct {
		Migrations []MigrationStatus `json:"migrations"`
		Pending    int               `json:"pending"`
		InSync     bool              `json:"in_sync"`
	}
)
