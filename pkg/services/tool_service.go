package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alertharvest/ah-mcp-gateway/pkg/alertharvest"
	"github.com/alertharvest/ah-mcp-gateway/pkg/models"
)

// ToolService dispatches named tool invocations to the AlertHarvest
// client. It validates every argument before anything touches the
// network: either the whole invocation is valid or no call is made.
type ToolService struct {
	client alertharvest.AlertHarvestClient
}

// NewToolService creates a new tool service
func NewToolService(client alertharvest.AlertHarvestClient) *ToolService {
	return &ToolService{client: client}
}

// Tools returns the definitions of all callable tools
func (s *ToolService) Tools() []ToolDefinition {
	return toolDefinitions
}

// Tool looks up a tool definition by name
func (s *ToolService) Tool(name string) (ToolDefinition, bool) {
	for _, def := range toolDefinitions {
		if def.Name == name {
			return def, true
		}
	}
	return ToolDefinition{}, false
}

// Dispatch routes a named invocation to the matching operation and always
// returns a structured outcome, never an error
func (s *ToolService) Dispatch(ctx context.Context, name string, args map[string]interface{}) models.OperationOutcome {
	invocationID := uuid.New().String()
	logrus.Infof("Dispatching tool %s (invocation %s)", name, invocationID)

	var outcome models.OperationOutcome
	switch name {
	case ToolCreateAlert:
		outcome = s.createAlert(ctx, args)
	case ToolAcknowledgeAlert:
		outcome = s.singleIDOp(ctx, args, s.client.AcknowledgeAlert, "acknowledged")
	case ToolAcknowledgeAlertsBulk:
		outcome = s.bulkIDOp(ctx, args, s.client.AcknowledgeAlertsBulk, "acknowledged")
	case ToolUnacknowledgeAlert:
		outcome = s.singleIDOp(ctx, args, s.client.UnacknowledgeAlert, "unacknowledged")
	case ToolCloseAlert:
		outcome = s.singleIDOp(ctx, args, s.client.CloseAlert, "closed")
	case ToolCloseAlertsBulk:
		outcome = s.bulkIDOp(ctx, args, s.client.CloseAlertsBulk, "closed")
	case ToolCloseExpiredAlerts:
		outcome = s.closeExpiredAlerts(ctx)
	default:
		outcome = models.FailureOutcome(models.FailureValidation,
			fmt.Sprintf("Unknown tool: %s", name), nil)
	}

	outcome.InvocationID = invocationID
	if !outcome.Success {
		logrus.Warnf("Tool %s failed (invocation %s): %s: %s", name, invocationID, outcome.Kind, outcome.Summary)
	}
	return outcome
}

func (s *ToolService) createAlert(ctx context.Context, args map[string]interface{}) models.OperationOutcome {
	location, err := requiredStringArg(args, "location")
	if err != nil {
		return validationFailure(err)
	}
	severityRaw, err := requiredStringArg(args, "severity")
	if err != nil {
		return validationFailure(err)
	}
	message, err := requiredStringArg(args, "message")
	if err != nil {
		return validationFailure(err)
	}
	source, err := requiredStringArg(args, "source")
	if err != nil {
		return validationFailure(err)
	}

	severity, err := models.ParseSeverity(severityRaw)
	if err != nil {
		return validationFailure(err)
	}

	timestamp, err := optionalStringArg(args, "timestamp")
	if err != nil {
		return validationFailure(err)
	}
	if timestamp != "" {
		if _, err := time.Parse(time.RFC3339, timestamp); err != nil {
			return validationFailure(fmt.Errorf("timestamp must be a valid ISO-8601 timestamp, got: %s", timestamp))
		}
	}

	draft := models.AlertDraft{
		Location:  location,
		Severity:  severity,
		Message:   message,
		Source:    source,
		Timestamp: timestamp,
	}

	resp, err := s.client.CreateAlert(ctx, draft)
	if err != nil {
		return failureFromError(err)
	}

	details := map[string]interface{}{
		"location": draft.Location,
		"severity": draft.Severity,
		"message":  draft.Message,
		"source":   draft.Source,
	}
	if draft.Timestamp != "" {
		details["timestamp"] = draft.Timestamp
	}
	if resp.ID != 0 {
		details["id"] = resp.ID
	}
	return models.SuccessOutcome(
		fmt.Sprintf("Alert created: %s alert at %s from %s", draft.Severity, draft.Location, draft.Source),
		details)
}

func (s *ToolService) singleIDOp(ctx context.Context, args map[string]interface{},
	call func(context.Context, models.AlertID) (*alertharvest.Response, error), verb string) models.OperationOutcome {

	raw, err := requiredStringArg(args, "alert_id")
	if err != nil {
		return validationFailure(err)
	}
	id, err := models.ParseAlertID(raw)
	if err != nil {
		return validationFailure(err)
	}

	if _, err := call(ctx, id); err != nil {
		return failureFromError(err)
	}
	return models.SuccessOutcome(
		fmt.Sprintf("Alert #%d %s successfully", id, verb),
		map[string]interface{}{"alert_id": id})
}

func (s *ToolService) bulkIDOp(ctx context.Context, args map[string]interface{},
	call func(context.Context, []models.AlertID) (*alertharvest.Response, error), verb string) models.OperationOutcome {

	raw, err := requiredStringArg(args, "alert_ids")
	if err != nil {
		return validationFailure(err)
	}
	ids, err := models.ParseAlertIDBatch(raw)
	if err != nil {
		return validationFailure(err)
	}

	if _, err := call(ctx, ids); err != nil {
		return failureFromError(err)
	}
	return models.SuccessOutcome(
		fmt.Sprintf("%d alerts %s successfully", len(ids), verb),
		map[string]interface{}{"alert_ids": ids, "count": len(ids)})
}

func (s *ToolService) closeExpiredAlerts(ctx context.Context) models.OperationOutcome {
	resp, err := s.client.CloseExpiredAlerts(ctx)
	if err != nil {
		return failureFromError(err)
	}

	summary := resp.Message
	if summary == "" {
		summary = "Expired alerts closed successfully"
	}
	details := map[string]interface{}{}
	if resp.Message != "" {
		details["message"] = resp.Message
	}
	return models.SuccessOutcome(summary, details)
}

// requiredStringArg extracts a named argument that must be a non-empty
// string after trimming whitespace
func requiredStringArg(args map[string]interface{}, name string) (string, error) {
	val, ok := args[name]
	if !ok {
		return "", fmt.Errorf("%s is required", name)
	}
	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	trimmed := strings.TrimSpace(str)
	if trimmed == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return trimmed, nil
}

// optionalStringArg extracts a named argument that may be absent or blank
func optionalStringArg(args map[string]interface{}, name string) (string, error) {
	val, ok := args[name]
	if !ok {
		return "", nil
	}
	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return strings.TrimSpace(str), nil
}

func validationFailure(err error) models.OperationOutcome {
	return models.FailureOutcome(models.FailureValidation, fmt.Sprintf("Invalid input: %v", err), nil)
}

// failureFromError maps a client error onto the matching outcome kind
func failureFromError(err error) models.OperationOutcome {
	var rejected *alertharvest.RejectedError
	if errors.As(err, &rejected) {
		return models.FailureOutcome(models.FailureUpstreamRejected,
			fmt.Sprintf("AlertHarvest rejected the request (HTTP %d)", rejected.StatusCode),
			map[string]interface{}{
				"status_code": rejected.StatusCode,
				"body":        rejected.Body,
			})
	}

	var unavailable *alertharvest.UnavailableError
	if errors.As(err, &unavailable) {
		details := map[string]interface{}{"error": unavailable.Error()}
		if unavailable.StatusCode != 0 {
			details["status_code"] = unavailable.StatusCode
		}
		return models.FailureOutcome(models.FailureUpstreamUnavailable,
			"AlertHarvest is unavailable", details)
	}

	var unexpected *alertharvest.UnexpectedResponseError
	if errors.As(err, &unexpected) {
		return models.FailureOutcome(models.FailureUnexpectedResponse,
			"AlertHarvest returned a response that could not be parsed",
			map[string]interface{}{
				"status_code": unexpected.StatusCode,
				"body":        unexpected.Body,
			})
	}

	return models.FailureOutcome(models.FailureUpstreamUnavailable,
		fmt.Sprintf("Request failed: %v", err), nil)
}
