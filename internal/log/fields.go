package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldUserID     = "user_id"
	FieldPhase      = "session_phase"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentSession = "session"
	ComponentGuard   = "guard"
	ComponentAPI     = "api"
	ComponentStorage = "storage"
	ComponentTrace   = "trace"
)
