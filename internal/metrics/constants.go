package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Gameplay metric names
const (
	MetricNameClicks             = "clicks_total"
	MetricNamePointsEarned       = "points_earned_total"
	MetricNameUpgradesPurchased  = "upgrades_purchased_total"
	MetricNamePrestiges          = "prestiges_total"
	MetricNamePrestigeUnlocks    = "prestige_unlocks_total"
	MetricNameGoldBombsTriggered = "gold_bombs_triggered_total"
	MetricNameSaveFailures       = "save_failures_total"
	MetricNameActiveGames        = "active_games"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Gameplay metric help text
const (
	HelpTextClicks             = "Total number of accepted clicks"
	HelpTextPointsEarned       = "Total points granted by clicks (approximate)"
	HelpTextUpgradesPurchased  = "Total number of point upgrades purchased"
	HelpTextPrestiges          = "Total number of prestige resets"
	HelpTextPrestigeUnlocks    = "Total number of prestige unlocks purchased"
	HelpTextGoldBombsTriggered = "Total number of gold bomb activations"
	HelpTextSaveFailures       = "Total number of failed save record writes"
	HelpTextActiveGames        = "Number of games currently loaded"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelUpgrade = "upgrade"
	LabelUnlock  = "unlock"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets are the request duration histogram buckets in seconds
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnexpected = "Unexpected event payload"
)
