package alertharvest

import (
	"context"

	"github.com/alertharvest/ah-mcp-gateway/pkg/models"
)

// AlertHarvestClient defines the interface for an AlertHarvest client
// This allows us to mock the client for testing
type AlertHarvestClient interface {
	CreateAlert(ctx context.Context, draft models.AlertDraft) (*Response, error)
	AcknowledgeAlert(ctx context.Context, id models.AlertID) (*Response, error)
	AcknowledgeAlertsBulk(ctx context.Context, ids []models.AlertID) (*Response, error)
	UnacknowledgeAlert(ctx context.Context, id models.AlertID) (*Response, error)
	CloseAlert(ctx context.Context, id models.AlertID) (*Response, error)
	CloseAlertsBulk(ctx context.Context, ids []models.AlertID) (*Response, error)
	CloseExpiredAlerts(ctx context.Context) (*Response, error)
}

// Ensure Client implements AlertHarvestClient
var _ AlertHarvestClient = (*Client)(nil)
