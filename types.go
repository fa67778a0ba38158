package curbwise

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the fixed set of role tags the backend assigns to users.
type Role string

const (
	// RoleAdmin manages users, billing, and the full violation workflow.
	RoleAdmin Role = "admin"
	// RoleInspector files and reviews violations.
	RoleInspector Role = "inspector"
	// RoleResident is an invited portal user with read access to their cases.
	RoleResident Role = "resident"
)

// Valid reports whether the role is one of the known tags.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInspector, RoleResident:
		return true
	}
	return false
}

// User is an account on the platform as returned by the backend.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name,omitempty"`
	Role     Role      `json:"role"`
	Active   bool      `json:"is_active"`
}

// Principal is the resolved identity of the authenticated session. It is
// always derived from the backend via GET /me, never constructed locally.
type Principal = User

// UserCreateRequest mirrors POST /users/create.
type UserCreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate returns an error when required fields are missing.
func (r UserCreateRequest) Validate() error {
	if r.Username == "" {
		return ValidationError{Field: "username", Message: "required"}
	}
	if r.Password == "" {
		return ValidationError{Field: "password", Message: "required"}
	}
	if !r.Role.Valid() {
		return ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q", r.Role)}
	}
	return nil
}

// ViolationStatus tracks a violation through the review workflow.
type ViolationStatus string

const (
	ViolationOpen      ViolationStatus = "open"
	ViolationInReview  ViolationStatus = "in_review"
	ViolationResolved  ViolationStatus = "resolved"
	ViolationDismissed ViolationStatus = "dismissed"
)

// ViolationSeverity grades how urgent a violation is.
type ViolationSeverity string

const (
	SeverityLow    ViolationSeverity = "low"
	SeverityMedium ViolationSeverity = "medium"
	SeverityHigh   ViolationSeverity = "high"
)

// Violation is a single reported violation case.
type Violation struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      ViolationStatus   `json:"status"`
	Severity    ViolationSeverity `json:"severity"`
	Address     string            `json:"address,omitempty"`
	PhotoURL    string            `json:"photo_url,omitempty"`
	ReportedBy  *uuid.UUID        `json:"reported_by,omitempty"`
	AssignedTo  *uuid.UUID        `json:"assigned_to,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

// ViolationCreateRequest mirrors POST /violations/create.
type ViolationCreateRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Severity    ViolationSeverity `json:"severity"`
	Address     string            `json:"address,omitempty"`
	PhotoURL    string            `json:"photo_url,omitempty"`
	AssignedTo  *uuid.UUID        `json:"assigned_to,omitempty"`
}

// ViolationUpdateRequest carries the fields to change on PUT /violations/{id}.
// Nil fields are left untouched by the backend.
type ViolationUpdateRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Status      *ViolationStatus   `json:"status,omitempty"`
	Severity    *ViolationSeverity `json:"severity,omitempty"`
	Address     *string            `json:"address,omitempty"`
	AssignedTo  *uuid.UUID         `json:"assigned_to,omitempty"`
}

// DashboardData is the aggregate payload behind GET /violations/dashboard-data.
type DashboardData struct {
	TotalViolations    int            `json:"total_violations"`
	OpenViolations     int            `json:"open_violations"`
	ResolvedViolations int            `json:"resolved_violations"`
	ByStatus           map[string]int `json:"by_status"`
	BySeverity         map[string]int `json:"by_severity"`
	Recent             []Violation    `json:"recent"`
}

// DashboardMetrics is the cross-cutting analytics payload.
type DashboardMetrics struct {
	ActiveUsers         int     `json:"active_users"`
	ViolationsThisMonth int     `json:"violations_this_month"`
	AvgResolutionDays   float64 `json:"avg_resolution_days"`
	ComplianceRate      float64 `json:"compliance_rate"`
}

// Plan describes a public subscription plan.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int      `json:"price_cents"`
	Interval   string   `json:"interval"`
	Features   []string `json:"features,omitempty"`
}

// SubscriptionInfo is the caller's subscription state.
type SubscriptionInfo struct {
	Plan              string     `json:"plan"`
	Status            string     `json:"status"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
}

// CheckoutSessionRequest mirrors POST /billing/create-checkout-session.
type CheckoutSessionRequest struct {
	PlanID     string `json:"plan_id"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

// CheckoutSession is the hosted checkout session returned by the backend.
// The client only receives the redirect URL; payment handling stays server-side.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ResidentInviteRequest mirrors POST /resident-portal/invite.
type ResidentInviteRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// ResidentRegistration mirrors POST /resident-portal/register. ConfirmPassword
// is checked client-side before any network call and is never transmitted.
type ResidentRegistration struct {
	InviteToken     string `json:"token"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	FullName        string `json:"full_name,omitempty"`
}

// InviteTokenStatus is the result of GET /resident-portal/verify-token.
type InviteTokenStatus struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}
