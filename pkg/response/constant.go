package response

// Standard response codes and messages.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Internal server error"
	InternalServerErrorCode = 500
)

// Date formats used by the Date/DateTime marshalers.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
