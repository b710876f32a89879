package loggers

const (
	FieldApp           = "app"
	FieldComponent     = "component"
	FieldHttpMethod    = "http_method"
	FieldHttpPath      = "http_path"
	FieldHttpStatus    = "http_status"
	FieldUserAgent     = "user_agent"
	FieldResponseBytes = "response_bytes"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldFlushID    = "flush_id"
	FieldEventCount = "event_count"
	FieldStorageKey = "storage_key"
	FieldBufferSize = "buffer_size"
	FieldEvents     = "events"
)
