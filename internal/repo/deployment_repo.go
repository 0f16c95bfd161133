// Package repo implements the persistence layer for deployment records,
// backed by GORM. This file provides repository functions for the
// Deployment model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a deployment is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateDeployment inserts a finished deployment record. The caller supplies
// the UUID id; CreatedAt/UpdatedAt are set to UTC here rather than left to
// GORM so the stored value matches what the service returns.
func CreateDeployment(ctx context.Context, db *gorm.DB, d *domain.Deployment) error {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return db.WithContext(ctx).Create(d).Error
}

// GetDeployment fetches a deployment by id, or ErrNotFound if missing.
func GetDeployment(ctx context.Context, db *gorm.DB, id string) (*domain.Deployment, error) {
	var d domain.Deployment
	err := db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDeploymentsByUser returns a user's deployments ordered by creation
// time descending, truncated to limit.
func ListDeploymentsByUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.Deployment, error) {
	var out []domain.Deployment
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteDeployment removes a deployment by id, reporting whether a row was
// actually deleted.
func DeleteDeployment(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	res := db.WithContext(ctx).Delete(&domain.Deployment{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountDeployments returns the total number of deployment records,
// used by the service info endpoint.
func CountDeployments(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Deployment{}).Count(&n).Error
	return n, err
}
