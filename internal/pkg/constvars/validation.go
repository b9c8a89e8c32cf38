package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a date in %s format",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof":    true,
	"datetime": true,
	"min":      true,
	"max":      true,
}
