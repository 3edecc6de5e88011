package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxRejectReasonLength = 500
)

// SkipCommand команда администратора "отклонить без комментария"
const SkipCommand = "/skip"
