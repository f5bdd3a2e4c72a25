package services

// Tool names exposed to the assistant runtime
const (
	ToolCreateAlert           = "create_alert"
	ToolAcknowledgeAlert      = "acknowledge_alert"
	ToolAcknowledgeAlertsBulk = "acknowledge_alerts_bulk"
	ToolUnacknowledgeAlert    = "unacknowledge_alert"
	ToolCloseAlert            = "close_alert"
	ToolCloseAlertsBulk       = "close_alerts_bulk"
	ToolCloseExpiredAlerts    = "close_expired_alerts"
)

// ToolArg describes one named argument of a tool
type ToolArg struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// ToolDefinition describes a callable tool so a runtime can register it
type ToolDefinition struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Args        []ToolArg `json:"args"`
}

var toolDefinitions = []ToolDefinition{
	{
		Name:        ToolCreateAlert,
		Description: "Create a new alert in AlertHarvest with location, severity, message, source, and timestamp",
		Args: []ToolArg{
			{Name: "location", Type: "string", Description: "Where the alert originates", Required: true},
			{Name: "severity", Type: "string", Description: "Severity level: critical, high, medium, low, or info", Required: true},
			{Name: "message", Type: "string", Description: "Human-readable alert message", Required: true},
			{Name: "source", Type: "string", Description: "System that produced the alert", Required: true},
			{Name: "timestamp", Type: "string", Description: "ISO-8601 timestamp, defaults to now", Required: false},
		},
	},
	{
		Name:        ToolAcknowledgeAlert,
		Description: "Acknowledge a specific alert by its ID to mark it as seen",
		Args: []ToolArg{
			{Name: "alert_id", Type: "string", Description: "Numeric alert ID", Required: true},
		},
	},
	{
		Name:        ToolAcknowledgeAlertsBulk,
		Description: "Acknowledge multiple alerts at once by providing comma-separated alert IDs",
		Args: []ToolArg{
			{Name: "alert_ids", Type: "string", Description: "Comma-separated numeric alert IDs", Required: true},
		},
	},
	{
		Name:        ToolUnacknowledgeAlert,
		Description: "Unacknowledge a specific alert by its ID to mark it as unread again",
		Args: []ToolArg{
			{Name: "alert_id", Type: "string", Description: "Numeric alert ID", Required: true},
		},
	},
	{
		Name:        ToolCloseAlert,
		Description: "Close a specific alert by its ID to mark it as resolved",
		Args: []ToolArg{
			{Name: "alert_id", Type: "string", Description: "Numeric alert ID", Required: true},
		},
	},
	{
		Name:        ToolCloseAlertsBulk,
		Description: "Close multiple alerts at once by providing comma-separated alert IDs",
		Args: []ToolArg{
			{Name: "alert_ids", Type: "string", Description: "Comma-separated numeric alert IDs", Required: true},
		},
	},
	{
		Name:        ToolCloseExpiredAlerts,
		Description: "Close all expired alerts automatically based on AlertHarvest's expiration rules",
		Args:        []ToolArg{},
	},
}
