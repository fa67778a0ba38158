// Package routes provides shared API route constants used by the SDK and
// the CLI to prevent path mismatches against the Curbwise backend.
package routes

// API route paths - these constants are shared between clients to ensure
// compile-time safety and prevent endpoint mismatches.
const (
	// Login exchanges a form-encoded username/password for a bearer token.
	Login = "/login"

	// Me returns the authenticated user's profile and role.
	Me = "/me"

	// Users lists user accounts (admin only).
	Users = "/users"

	// UsersCreate registers a new user account (admin only).
	UsersCreate = "/users/create"

	// Violations lists violations; also the base for item paths.
	Violations = "/violations"

	// ViolationsCreate files a new violation report.
	ViolationsCreate = "/violations/create"

	// ViolationsDashboardData returns aggregate counts for the dashboard.
	ViolationsDashboardData = "/violations/dashboard-data"

	// ViolationsExportCSV returns the violation list as a CSV document.
	ViolationsExportCSV = "/violations/export-csv"

	// AnalyticsDashboardMetrics returns cross-cutting analytics metrics.
	AnalyticsDashboardMetrics = "/analytics/dashboard-metrics"

	// BillingPlans lists the public subscription plans.
	BillingPlans = "/billing/plans"

	// BillingMySubscription returns the caller's subscription state.
	BillingMySubscription = "/billing/my-subscription"

	// BillingCreateCheckoutSession starts a hosted checkout session.
	BillingCreateCheckoutSession = "/billing/create-checkout-session"

	// BillingCancelSubscription cancels the caller's subscription at period end.
	BillingCancelSubscription = "/billing/cancel-subscription"

	// ResidentPortalRegister completes an invited resident's registration.
	ResidentPortalRegister = "/resident-portal/register"

	// ResidentPortalInvite sends a registration invite to a resident.
	ResidentPortalInvite = "/resident-portal/invite"

	// ResidentPortalVerifyToken checks an invite token before registration.
	ResidentPortalVerifyToken = "/resident-portal/verify-token" // #nosec G101 -- route path, not a credential
)
