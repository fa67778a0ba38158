package curbwise

import (
	"context"
	"fmt"
	"net/http"

	"github.com/curbwise/curbwise-go/routes"
)

// AnalyticsClient wraps the analytics endpoints.
type AnalyticsClient struct {
	client *Client
}

func (c *AnalyticsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("curbwise: analytics client not initialized")
	}
	return nil
}

// DashboardMetrics returns the cross-cutting metrics for the admin dashboard.
func (c *AnalyticsClient) DashboardMetrics(ctx context.Context) (DashboardMetrics, error) {
	if err := c.ensureInitialized(); err != nil {
		return DashboardMetrics{}, err
	}
	var payload DashboardMetrics
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.AnalyticsDashboardMetrics, nil, &payload); err != nil {
		return DashboardMetrics{}, err
	}
	return payload, nil
}
