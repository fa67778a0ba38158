package curbwise

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestUsersCreate(t *testing.T) {
	t.Run("RoleValidatedBeforeNetwork", func(t *testing.T) {
		client, _ := newTestClient(t, noRequests(t))
		_, err := client.Users.Create(context.Background(), UserCreateRequest{
			Username: "sam",
			Password: "hunter2",
			Role:     "superuser",
		})
		var vErr ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %T: %v", err, err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/users/create" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			w.Write([]byte(userJSON))
		}))
		user, err := client.Users.Create(context.Background(), UserCreateRequest{
			Username: "pat",
			Password: "hunter2",
			Role:     RoleInspector,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if user.Username != "pat" {
			t.Errorf("unexpected user %+v", user)
		}
	})
}

func TestAnalyticsDashboardMetrics(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analytics/dashboard-metrics" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"active_users":12,"violations_this_month":40,"avg_resolution_days":3.5,"compliance_rate":0.92}`))
	}))
	metrics, err := client.Analytics.DashboardMetrics(context.Background())
	if err != nil {
		t.Fatalf("DashboardMetrics failed: %v", err)
	}
	if metrics.ActiveUsers != 12 || metrics.AvgResolutionDays != 3.5 {
		t.Errorf("unexpected metrics %+v", metrics)
	}
}
