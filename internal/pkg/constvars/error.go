package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"oneof":             "must be one of: %s",
	"datevalue":         "must be a valid date in YYYY-MM-DD format",
	"hhmm":              "must be a valid time in HH:MM format",
	"consultation_type": "must be one of: video, phone, in-person",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"

	ErrClientLawyerNotFound            = "lawyer not found"
	ErrClientConsultationNotFound      = "consultation not found"
	ErrClientNotConsultationParty      = "you are not a party to this consultation"
	ErrClientConsultationDateInPast    = "consultation date and time must be in the future"
	ErrClientConsultationFinalized     = "this consultation can no longer be modified"
	ErrClientConsultationNotPaid       = "consultation must be paid before rescheduling"
	ErrClientRescheduleLimitReached    = "only one reschedule is allowed per consultation"
	ErrClientInvalidStatusTransition   = "this status change is not allowed"
	ErrClientPaymentNotAllowedYet      = "payment is only available once the lawyer accepts the consultation"
	ErrClientPaymentAlreadyDone        = "this consultation is already paid"
	ErrClientPaymentVerificationFailed = "payment verification failed"
	ErrClientConsultationModified      = "the consultation was modified by someone else, please retry"
	ErrClientNoConsultationFee         = "this lawyer has no consultation fee configured"
)

// Error messages for developers
const (
	ErrDevInvalidInput       = "invalid input"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevCannotParseTime    = "cannot parse date or time"
	ErrDevValidationFailed   = "validation failed"
	ErrDevMissingRequestID   = "request id missing from context"
	ErrDevMissingSessionData = "session data missing from context"

	ErrDevAuthSigningMethod     = "unexpected signing method"
	ErrDevAuthTokenInvalid      = "invalid token"
	ErrDevAuthTokenMissing      = "token missing"
	ErrDevAuthInvalidSession    = "invalid session"
	ErrDevAuthGenerateToken     = "failed to generate token"
	ErrDevInvalidCredentials    = "invalid credentials"
	ErrDevRoleTypeDoesntMatch   = "role type doesn't match"
	ErrDevServerProcess         = "failed to process request"
	ErrDevServerDeadlineExceeed = "server deadline exceeded"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"
	ErrDevDBConditionalUpdateMissed  = "conditional update matched no document"

	ErrDevRedisGetNoData  = "no data from redis with key: %s"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to set nx data to redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevRabbitMQPublish = "failed to publish message to exchange: %s"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode response from %s"

	ErrDevLawyerNotFound              = "lawyer does not exist"
	ErrDevConsultationNotFound        = "consultation does not exist"
	ErrDevNotConsultationParty        = "actor is neither the lawyer nor the client on the consultation"
	ErrDevConsultationDateInPast      = "scheduled datetime is not in the future"
	ErrDevConsultationTerminalState   = "consultation is in a terminal state"
	ErrDevConsultationNotPaid         = "consultation is not paid"
	ErrDevRescheduleLimitReached      = "reschedule request list is not empty"
	ErrDevInvalidStatusTransition     = "status transition not in the legal transition table"
	ErrDevPaymentNotAllowed           = "payment precondition failed (status/paid)"
	ErrDevPaymentSignatureMismatch    = "gateway signature does not match expected HMAC"
	ErrDevConcurrentModification      = "optimistic concurrency check failed"
	ErrDevPaymentGatewayCreateOrder   = "payment gateway order creation failed"
	ErrDevPaymentGatewayRateLimited   = "payment gateway limiter rejected the call"
	ErrDevLawyerFeeNotConfigured      = "lawyer consultation fee is zero or missing"
	ErrDevConsultationUpdateForbidden = "acting lawyer does not own the consultation"
)
