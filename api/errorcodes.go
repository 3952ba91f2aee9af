package api

const (
	CategoryDatabase     = ErrorCategory("Database")
	CategoryUser         = ErrorCategory("User") // used for errors related to user input, validation, etc.
	CategoryConflict     = ErrorCategory("Conflict")
	CategoryUnauthorized = ErrorCategory("Unauthorized")
	CategoryNotFound     = ErrorCategory("NotFound")
	CategoryInternal     = ErrorCategory("Internal") // used for internal server errors, not related to bad user input
)

const (
	// General

	ErrorCreateFailure         = ErrorKey("ErrorCreateFailure")
	ErrorGenericInternalServer = ErrorKey("ErrorGenericInternalServer")
	ErrorForeignKeyViolation   = ErrorKey("ErrorForeignKeyViolation")
	ErrorInvalidRequestBody    = ErrorKey("ErrorInvalidRequestBody")
	ErrorNoRows                = ErrorKey("ErrorNoRows")
	ErrorQueryFailure          = ErrorKey("ErrorQueryFailure")
	ErrorSaveFailure           = ErrorKey("ErrorSaveFailure")
	ErrorUniqueKeyViolation    = ErrorKey("ErrorUniqueKeyViolation")
	ErrorUnknown               = ErrorKey("ErrorUnknown")
	ErrorUpdateFailure         = ErrorKey("ErrorUpdateFailure")
	ErrorValidation            = ErrorKey("ErrorValidation")

	// Purchase request shape
	ErrorMissingRequiredFields = ErrorKey("ErrorMissingRequiredFields")
	ErrorNoMembers             = ErrorKey("ErrorNoMembers")
	ErrorNoDevices             = ErrorKey("ErrorNoDevices")
	ErrorInvalidAmount         = ErrorKey("ErrorInvalidAmount")
	ErrorInvalidStartDate      = ErrorKey("ErrorInvalidStartDate")
	ErrorInvalidDebitDay       = ErrorKey("ErrorInvalidDebitDay")

	// Referenced records
	ErrorProductNotFound = ErrorKey("ErrorProductNotFound")
	ErrorPricingNotFound = ErrorKey("ErrorPricingNotFound")
	ErrorOutletNotFound  = ErrorKey("ErrorOutletNotFound")
	ErrorPolicyNotFound  = ErrorKey("ErrorPolicyNotFound")

	// Identity
	ErrorMissingIdentityFields = ErrorKey("ErrorMissingIdentityFields")
	ErrorDuplicateIdentity     = ErrorKey("ErrorDuplicateIdentity")

	// Policy numbering
	ErrorPolicyNumberConflict = ErrorKey("ErrorPolicyNumberConflict")

	// Totals
	ErrorTotalsMismatch = ErrorKey("ErrorTotalsMismatch")
)
