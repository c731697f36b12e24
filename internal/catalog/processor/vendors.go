package processor

import (
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"strings"

	"github.com/google/uuid"
)

// VendorInput is the admin-editable part of a vendor
type VendorInput struct {
	Name         string
	Slug         string
	Description  *string
	WebsiteURL   *string
	LogoURL      *string
	FoundedYear  *int
	Headquarters *string
}

func (in VendorInput) toParams() (store.VendorParams, error) {
	name := strings.TrimSpace(in.Name)
	slug := strings.TrimSpace(in.Slug)
	if name == "" || slug == "" {
		return store.VendorParams{}, ErrMissingNameOrSlug
	}
	return store.VendorParams{
		Name:         name,
		Slug:         slug,
		Description:  nonEmpty(in.Description),
		WebsiteURL:   nonEmpty(in.WebsiteURL),
		LogoURL:      nonEmpty(in.LogoURL),
		FoundedYear:  in.FoundedYear,
		Headquarters: nonEmpty(in.Headquarters),
	}, nil
}

// ListVendors returns every vendor ordered by name
func (p *CatalogProcessor) ListVendors(ctx context.Context) ([]store.Vendor, error) {
	vendors, err := p.store.ListVendors(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list vendors", err)
		return nil, err
	}
	return vendors, nil
}

// CreateVendor validates and stores a new vendor
func (p *CatalogProcessor) CreateVendor(ctx context.Context, input VendorInput) (store.Vendor, error) {
	params, err := input.toParams()
	if err != nil {
		return store.Vendor{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "vendor_slug", Value: params.Slug})

	vendor, err := p.store.CreateVendor(ctx, params)
	if err != nil {
		err = classifyWriteError(err, ErrVendorNotFound, ErrVendorExists, nil)
		p.logWriteError(ctx, "failed to create vendor", err)
		return store.Vendor{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "vendor_id", Value: vendor.ID.String()})
	p.logger.Info(ctx, "vendor created")
	return vendor, nil
}

// UpdateVendor replaces the editable fields of a vendor
func (p *CatalogProcessor) UpdateVendor(ctx context.Context, vendorID uuid.UUID, input VendorInput) (store.Vendor, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "vendor_id", Value: vendorID.String()})

	params, err := input.toParams()
	if err != nil {
		return store.Vendor{}, err
	}

	vendor, err := p.store.UpdateVendor(ctx, vendorID, params)
	if err != nil {
		err = classifyWriteError(err, ErrVendorNotFound, ErrVendorExists, nil)
		p.logWriteError(ctx, "failed to update vendor", err)
		return store.Vendor{}, err
	}

	p.logger.Info(ctx, "vendor updated")
	return vendor, nil
}

// DeleteVendor removes a vendor that no tool references
func (p *CatalogProcessor) DeleteVendor(ctx context.Context, vendorID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "vendor_id", Value: vendorID.String()})

	if err := p.store.DeleteVendor(ctx, vendorID); err != nil {
		err = classifyWriteError(err, ErrVendorNotFound, nil, ErrVendorHasTools)
		p.logWriteError(ctx, "failed to delete vendor", err)
		return err
	}

	p.logger.Info(ctx, "vendor deleted")
	return nil
}
