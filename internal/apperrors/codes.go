package apperrors

// Error codes grouped by concern.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"
	CodeProjectNotFound    ErrorCode = "PROJECT_NOT_FOUND"
	CodeSkillNotFound      ErrorCode = "SKILL_NOT_FOUND"
	CodeExperienceNotFound ErrorCode = "EXPERIENCE_NOT_FOUND"
	CodeEducationNotFound  ErrorCode = "EDUCATION_NOT_FOUND"
	CodeContactNotFound    ErrorCode = "CONTACT_NOT_FOUND"

	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
