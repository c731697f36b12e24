package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const adminProfileColumns = `id, email, full_name, role, is_active, created_at, updated_at`

const sqlGetAdminProfile = `SELECT ` + adminProfileColumns + ` FROM admin_profiles WHERE id = $1`

// GetAdminProfile retrieves the admin profile of an external auth user
func (s *Store) GetAdminProfile(ctx context.Context, userID uuid.UUID) (AdminProfile, error) {
	var profile AdminProfile
	if err := s.db.GetContext(ctx, &profile, sqlGetAdminProfile, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdminProfile{}, ErrNotFound
		}
		return AdminProfile{}, fmt.Errorf("failed to get admin profile: %w", err)
	}
	return profile, nil
}

const sqlCreateAdminProfile = `
INSERT INTO admin_profiles (id, email, full_name, role, is_active)
VALUES ($1, $2, $3, 'admin', TRUE)
ON CONFLICT (id) DO UPDATE SET updated_at = admin_profiles.updated_at
RETURNING ` + adminProfileColumns

// CreateAdminProfile provisions an active admin profile, returning the existing row on a race
func (s *Store) CreateAdminProfile(ctx context.Context, userID uuid.UUID, email string, fullName *string) (AdminProfile, error) {
	var profile AdminProfile
	if err := s.db.GetContext(ctx, &profile, sqlCreateAdminProfile, userID, email, fullName); err != nil {
		return AdminProfile{}, fmt.Errorf("failed to create admin profile: %w", err)
	}
	return profile, nil
}

const sqlGetDashboardStats = `
SELECT
	(SELECT COUNT(*) FROM tools) AS tools,
	(SELECT COUNT(*) FROM categories) AS categories,
	(SELECT COUNT(*) FROM reviews) AS reviews,
	(SELECT COUNT(*) FROM affiliate_clicks) AS clicks
`

// GetDashboardStats returns headline counts for the admin dashboard
func (s *Store) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.GetContext(ctx, &stats, sqlGetDashboardStats); err != nil {
		return DashboardStats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}

// probeQueries are fixed so table names never come from input
var probeQueries = map[string]string{
	"categories": `SELECT COUNT(*) FROM (SELECT 1 FROM categories LIMIT 1) p`,
	"vendors":    `SELECT COUNT(*) FROM (SELECT 1 FROM vendors LIMIT 1) p`,
	"tools":      `SELECT COUNT(*) FROM (SELECT 1 FROM tools LIMIT 1) p`,
}

// ProbeTable checks that a catalog table is readable
func (s *Store) ProbeTable(ctx context.Context, table string) error {
	query, ok := probeQueries[table]
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}
	var n int
	if err := s.db.GetContext(ctx, &n, query); err != nil {
		return fmt.Errorf("failed to probe %s: %w", table, err)
	}
	return nil
}
