package curbwise

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/curbwise/curbwise-go/routes"
)

// ViolationsClient provides methods for the violation review workflow.
//
// Example:
//
//	open, err := client.Violations.List(ctx, curbwise.ViolationListOptions{
//	    Status: curbwise.ViolationOpen,
//	})
type ViolationsClient struct {
	client *Client
}

func (c *ViolationsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("curbwise: violations client not initialized")
	}
	return nil
}

// ViolationListOptions filters and pages the violation list.
type ViolationListOptions struct {
	Status   ViolationStatus
	Severity ViolationSeverity
	// Limit caps the number of results (backend default applies when 0).
	Limit  int
	Offset int
}

// List returns violations matching opts.
func (c *ViolationsClient) List(ctx context.Context, opts ViolationListOptions) ([]Violation, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	path := routes.Violations
	params := url.Values{}
	if opts.Status != "" {
		params.Set("status", string(opts.Status))
	}
	if opts.Severity != "" {
		params.Set("severity", string(opts.Severity))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		params.Set("offset", strconv.Itoa(opts.Offset))
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var payload []Violation
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Get retrieves a single violation by ID.
func (c *ViolationsClient) Get(ctx context.Context, id uuid.UUID) (Violation, error) {
	if err := c.ensureInitialized(); err != nil {
		return Violation{}, err
	}
	if id == uuid.Nil {
		return Violation{}, ValidationError{Field: "id", Message: "required"}
	}
	var payload Violation
	path := fmt.Sprintf("%s/%s", routes.Violations, id)
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return Violation{}, err
	}
	return payload, nil
}

// Create files a new violation report.
func (c *ViolationsClient) Create(ctx context.Context, req ViolationCreateRequest) (Violation, error) {
	if err := c.ensureInitialized(); err != nil {
		return Violation{}, err
	}
	if req.Title == "" {
		return Violation{}, ValidationError{Field: "title", Message: "required"}
	}
	var payload Violation
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.ViolationsCreate, req, &payload); err != nil {
		return Violation{}, err
	}
	return payload, nil
}

// Update changes the non-nil fields of a violation.
func (c *ViolationsClient) Update(ctx context.Context, id uuid.UUID, req ViolationUpdateRequest) (Violation, error) {
	if err := c.ensureInitialized(); err != nil {
		return Violation{}, err
	}
	if id == uuid.Nil {
		return Violation{}, ValidationError{Field: "id", Message: "required"}
	}
	var payload Violation
	path := fmt.Sprintf("%s/%s", routes.Violations, id)
	if err := c.client.sendAndDecode(ctx, http.MethodPut, path, req, &payload); err != nil {
		return Violation{}, err
	}
	return payload, nil
}

// Delete removes a violation.
func (c *ViolationsClient) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.ensureInitialized(); err != nil {
		return err
	}
	if id == uuid.Nil {
		return ValidationError{Field: "id", Message: "required"}
	}
	path := fmt.Sprintf("%s/%s", routes.Violations, id)
	return c.client.sendAndDecode(ctx, http.MethodDelete, path, nil, nil)
}

// DashboardData returns the aggregate counts for the dashboard view.
func (c *ViolationsClient) DashboardData(ctx context.Context) (DashboardData, error) {
	if err := c.ensureInitialized(); err != nil {
		return DashboardData{}, err
	}
	var payload DashboardData
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.ViolationsDashboardData, nil, &payload); err != nil {
		return DashboardData{}, err
	}
	return payload, nil
}

// ExportCSV returns the violation list as raw CSV bytes. The body is passed
// through untouched; this is the one endpoint that does not serve JSON.
func (c *ViolationsClient) ExportCSV(ctx context.Context) ([]byte, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	return c.client.sendRaw(ctx, http.MethodGet, routes.ViolationsExportCSV)
}
