package constvars

// CustomValidationErrorMessages maps validator tags to human readable fragments.
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email address",
	"min":         "must be at least %s",
	"max":         "must be at most %s",
	"gt":          "must be greater than %s",
	"gte":         "must be at least %s",
	"lt":          "must be less than %s",
	"lte":         "must be at most %s",
	"oneof":       "must be one of: %s",
	"len":         "must have a length of %s",
	"role":        "must be a valid role",
	"time_hhmm":   "must be a time in HH:MM format",
	"date_iso":    "must be a date in YYYY-MM-DD format",
	"not_blank":   "must not be blank",
}

// TagsWithParams marks tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
	"len":   true,
}
