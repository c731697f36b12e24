package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// VendorParams carries the writable vendor columns
type VendorParams struct {
	Name         string
	Slug         string
	Description  *string
	WebsiteURL   *string
	LogoURL      *string
	FoundedYear  *int
	Headquarters *string
}

const vendorColumns = `id, name, slug, description, website_url, logo_url, founded_year, headquarters, created_at, updated_at`

const sqlListVendors = `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name`

// ListVendors returns all vendors ordered by name
func (s *Store) ListVendors(ctx context.Context) ([]Vendor, error) {
	vendors := []Vendor{}
	if err := s.db.SelectContext(ctx, &vendors, sqlListVendors); err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

const sqlGetVendorByID = `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`

// GetVendorByID retrieves a vendor by ID
func (s *Store) GetVendorByID(ctx context.Context, vendorID uuid.UUID) (Vendor, error) {
	var vendor Vendor
	if err := s.db.GetContext(ctx, &vendor, sqlGetVendorByID, vendorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Vendor{}, ErrNotFound
		}
		return Vendor{}, fmt.Errorf("failed to get vendor by id: %w", err)
	}
	return vendor, nil
}

const sqlCreateVendor = `
INSERT INTO vendors (name, slug, description, website_url, logo_url, founded_year, headquarters)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + vendorColumns

// CreateVendor creates a new vendor
func (s *Store) CreateVendor(ctx context.Context, params VendorParams) (Vendor, error) {
	var vendor Vendor
	err := s.db.GetContext(ctx, &vendor, sqlCreateVendor,
		params.Name,
		params.Slug,
		params.Description,
		params.WebsiteURL,
		params.LogoURL,
		params.FoundedYear,
		params.Headquarters)
	if err != nil {
		return Vendor{}, fmt.Errorf("failed to create vendor: %w", classifyError(err))
	}
	return vendor, nil
}

const sqlUpdateVendor = `
UPDATE vendors
SET name = $2, slug = $3, description = $4, website_url = $5, logo_url = $6, founded_year = $7,
	headquarters = $8, updated_at = NOW()
WHERE id = $1
RETURNING ` + vendorColumns

// UpdateVendor replaces the writable columns of a vendor
func (s *Store) UpdateVendor(ctx context.Context, vendorID uuid.UUID, params VendorParams) (Vendor, error) {
	var vendor Vendor
	err := s.db.GetContext(ctx, &vendor, sqlUpdateVendor,
		vendorID,
		params.Name,
		params.Slug,
		params.Description,
		params.WebsiteURL,
		params.LogoURL,
		params.FoundedYear,
		params.Headquarters)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Vendor{}, ErrNotFound
		}
		return Vendor{}, fmt.Errorf("failed to update vendor: %w", classifyError(err))
	}
	return vendor, nil
}

const (
	sqlLockVendor     = `SELECT id FROM vendors WHERE id = $1 FOR UPDATE`
	sqlVendorHasTools = `SELECT EXISTS (SELECT 1 FROM tools WHERE vendor_id = $1)`
	sqlDeleteVendor   = `DELETE FROM vendors WHERE id = $1`
)

// DeleteVendor removes a vendor that no tool references
func (s *Store) DeleteVendor(ctx context.Context, vendorID uuid.UUID) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		return guardedDelete(ctx, tx, vendorID, sqlLockVendor, sqlVendorHasTools, sqlDeleteVendor)
	})
}
