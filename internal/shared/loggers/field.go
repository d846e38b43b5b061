package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldRunID      = "run_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldFile       = "file"
	FieldLineNumber = "line_number"
	FieldFormat     = "format"
)
