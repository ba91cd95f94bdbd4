package admin

import (
	migration "family-foodie/cmd/database/migrate"
	"family-foodie/domain"
	"family-foodie/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AdminService interface {
		GetMigrationStatus(ctx context.Context) (domain.MigrationStatusResponse, error)
	}

	adminService struct {
		db *gorm.DB
	}
)

func NewAdminService(db *gorm.DB) AdminService {
	return &adminService{db: db}
}

// GetMigrationStatus compares the recorded schema_migrations rows against
// the known migration steps and reports which are still pending.
func (s *adminService) GetMigrationStatus(ctx context.Context) (domain.MigrationStatusResponse, error) {
	var applied []*entities.SchemaMigration
	if err := s.db.WithContext(ctx).Order("applied_at asc").Find(&applied).Error; err != nil {
		return domain.MigrationStatusResponse{}, err
	}

	appliedByName := make(map[string]*entities.SchemaMigration, len(applied))
	for _, row := range applied {
		appliedByName[row.Filename] = row
	}

	response := domain.MigrationStatusResponse{}
	for _, step := range migration.Steps() {
		status := domain.MigrationStatus{Filename: step.Name}
		if row, ok := appliedByName[step.Name]; ok {
			status.Applied = true
			appliedAt := row.AppliedAt
			status.AppliedAt = &appliedAt
		} else {
			response.Pending++
		}
		response.Migrations = append(response.Migrations, status)
	}

	response.InSync = response.Pending == 0
	return response, nil
}
