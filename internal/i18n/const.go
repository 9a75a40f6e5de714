package i18n

// Request and storage errors
var (
	ErrInvalidRequest = NewErrorWithCode("ErrorInvalidRequest", ErrorBadRequest)
	ErrInternalServer = NewErrorWithCode("ErrorInternalServer", ErrorInternalServer)
	ErrDatabase       = NewErrorWithCode("ErrorDatabase", ErrorInternalServer)
)

// Account errors
var (
	ErrDuplicateStudent        = NewErrorWithCode("ErrorDuplicateStudent", ErrorBadRequest)
	ErrInvalidCredentials      = NewErrorWithCode("ErrorInvalidCredentials", ErrorUnauthorized)
	ErrInvalidAdminCredentials = NewErrorWithCode("ErrorInvalidAdminCredentials", ErrorUnauthorized)
	ErrFetchUsers              = NewErrorWithCode("ErrorFetchUsers", ErrorInternalServer)
)

// Report errors
var (
	ErrSubmitReport   = NewErrorWithCode("ErrorSubmitReport", ErrorInternalServer)
	ErrFetchReports   = NewErrorWithCode("ErrorFetchReports", ErrorInternalServer)
	ErrUpdateReport   = NewErrorWithCode("ErrorUpdateReport", ErrorInternalServer)
	ErrFetchStats     = NewErrorWithCode("ErrorFetchStats", ErrorInternalServer)
	ErrUploadImage    = NewErrorWithCode("ErrorUploadImage", ErrorInternalServer)
	ErrInvalidImage   = NewErrorWithCode("ErrorInvalidImage", ErrorBadRequest)
	ErrReportNotFound = NewErrorWithCode("ErrorReportNotFound", ErrorNotFound)
)

// Chat errors
var (
	ErrFetchMessages = NewErrorWithCode("ErrorFetchMessages", ErrorInternalServer)
	ErrSendMessage   = NewErrorWithCode("ErrorSendMessage", ErrorInternalServer)
)

// Success message ids
const (
	SuccessRegistration  = "SuccessRegistration"
	SuccessReportSubmit  = "SuccessReportSubmit"
	SuccessReportUpdate  = "SuccessReportUpdate"
	SuccessMessageSent   = "SuccessMessageSent"
	SuccessImageUploaded = "SuccessImageUploaded"
)
