package errors

// ErrorCode identifies an application error category
type ErrorCode int32

const (
	ErrorCode_HTTP_OK             ErrorCode = 0
	ErrorCode_INTERNAL            ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT    ErrorCode = 1001
	ErrorCode_NOT_FOUND           ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS      ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED   ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED     ErrorCode = 1005
	ErrorCode_FORBIDDEN           ErrorCode = 1006
	ErrorCode_VALIDATION_FAILED   ErrorCode = 1100
	ErrorCode_REFERENCE_NOT_FOUND ErrorCode = 1101
	ErrorCode_MEETING_NOT_FOUND   ErrorCode = 1200
	ErrorCode_AUTH_INVALID_TOKEN  ErrorCode = 1300
	ErrorCode_AUTH_TOKEN_EXPIRED  ErrorCode = 1301
	ErrorCode_AUTH_USER_NOT_FOUND ErrorCode = 1302
	ErrorCode_DB_QUERY_FAILED     ErrorCode = 1400
)

// String returns the string representation of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_ALREADY_EXISTS:
		return "ALREADY_EXISTS"
	case ErrorCode_PERMISSION_DENIED:
		return "PERMISSION_DENIED"
	case ErrorCode_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	case ErrorCode_FORBIDDEN:
		return "FORBIDDEN"
	case ErrorCode_VALIDATION_FAILED:
		return "VALIDATION_FAILED"
	case ErrorCode_REFERENCE_NOT_FOUND:
		return "REFERENCE_NOT_FOUND"
	case ErrorCode_MEETING_NOT_FOUND:
		return "MEETING_NOT_FOUND"
	case ErrorCode_AUTH_INVALID_TOKEN:
		return "AUTH_INVALID_TOKEN"
	case ErrorCode_AUTH_TOKEN_EXPIRED:
		return "AUTH_TOKEN_EXPIRED"
	case ErrorCode_AUTH_USER_NOT_FOUND:
		return "AUTH_USER_NOT_FOUND"
	case ErrorCode_DB_QUERY_FAILED:
		return "DB_QUERY_FAILED"
	default:
		return "UNKNOWN"
	}
}
