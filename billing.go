package curbwise

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/curbwise/curbwise-go/routes"
)

// BillingClient provides subscription self-service operations.
//
// Payment handling is entirely server-side; the client only receives the
// hosted checkout URL to redirect to.
//
// Example:
//
//	sub, err := client.Billing.MySubscription(ctx)
type BillingClient struct {
	client *Client
}

func (c *BillingClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("curbwise: billing client not initialized")
	}
	return nil
}

// Plans lists the public subscription plans. Works unauthenticated.
func (c *BillingClient) Plans(ctx context.Context) ([]Plan, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var payload []Plan
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.BillingPlans, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// MySubscription returns the caller's subscription state.
func (c *BillingClient) MySubscription(ctx context.Context) (SubscriptionInfo, error) {
	if err := c.ensureInitialized(); err != nil {
		return SubscriptionInfo{}, err
	}
	var payload SubscriptionInfo
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.BillingMySubscription, nil, &payload); err != nil {
		return SubscriptionInfo{}, err
	}
	return payload, nil
}

// CreateCheckoutSession starts a hosted checkout session for the given plan.
func (c *BillingClient) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error) {
	if err := c.ensureInitialized(); err != nil {
		return CheckoutSession{}, err
	}
	if strings.TrimSpace(req.PlanID) == "" {
		return CheckoutSession{}, ValidationError{Field: "plan_id", Message: "required"}
	}
	if strings.TrimSpace(req.SuccessURL) == "" || strings.TrimSpace(req.CancelURL) == "" {
		return CheckoutSession{}, ValidationError{Message: "success_url and cancel_url required"}
	}
	var payload CheckoutSession
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.BillingCreateCheckoutSession, req, &payload); err != nil {
		return CheckoutSession{}, err
	}
	return payload, nil
}

// CancelSubscription cancels the caller's subscription at period end.
func (c *BillingClient) CancelSubscription(ctx context.Context) (SubscriptionInfo, error) {
	if err := c.ensureInitialized(); err != nil {
		return SubscriptionInfo{}, err
	}
	var payload SubscriptionInfo
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.BillingCancelSubscription, nil, &payload); err != nil {
		return SubscriptionInfo{}, err
	}
	return payload, nil
}
