package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Chat
	FieldClientID = "client_id"
	FieldEvent    = "event"
	FieldName     = "name"

	// Upload
	FieldFileName = "file_name"
	FieldFileSize = "file_size"
	FieldCacheKey = "cache_key"

	// Service
	FieldService = "service"
)
