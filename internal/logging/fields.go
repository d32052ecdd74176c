package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldLeague     = "league"
	FieldGameID     = "game_id"
	FieldGameKey    = "game_key"
	FieldUserID     = "user_id"
	FieldTopic      = "topic"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
