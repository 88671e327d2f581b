package response

type ErrorCode int

const (
	OK ErrorCode = 0

	InvalidRequest   ErrorCode = 40001
	ValidationFailed ErrorCode = 40002
	TokenExpired     ErrorCode = 40101
	InvalidToken     ErrorCode = 40103
	NotFound         ErrorCode = 40401
	Conflict         ErrorCode = 40901
	BusinessRule     ErrorCode = 42201

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
