package curbwise

import (
	"context"
	"net/http"
	"testing"
)

func TestBillingPlans(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/billing/plans" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":"starter","name":"Starter","price_cents":4900,"interval":"month"}]`))
	}))
	plans, err := client.Billing.Plans(context.Background())
	if err != nil {
		t.Fatalf("Plans failed: %v", err)
	}
	if len(plans) != 1 || plans[0].PriceCents != 4900 {
		t.Errorf("unexpected plans %+v", plans)
	}
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	client, _ := newTestClient(t, noRequests(t))
	_, err := client.Billing.CreateCheckoutSession(context.Background(), CheckoutSessionRequest{PlanID: "starter"})
	if err == nil {
		t.Fatal("expected error for missing redirect URLs")
	}
}

func TestCancelSubscription(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/billing/cancel-subscription" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"plan":"starter","status":"active","cancel_at_period_end":true}`))
	}))
	sub, err := client.Billing.CancelSubscription(context.Background())
	if err != nil {
		t.Fatalf("CancelSubscription failed: %v", err)
	}
	if !sub.CancelAtPeriodEnd {
		t.Error("expected cancel_at_period_end set")
	}
}
