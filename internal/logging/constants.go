package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldCategory   = "category"
	FieldSheet      = "sheet"
	FieldEmployee   = "employee"
	FieldDate       = "date"
	FieldRow        = "row"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldMode       = "mode"
	FieldError      = "error"
)
