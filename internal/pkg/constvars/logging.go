package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingResponseKey       = "response"
	LoggingResponseCountKey  = "response_count"
	LoggingConsultationIDKey = "consultation_id"
	LoggingLawyerIDKey       = "lawyer_id"
	LoggingClientIDKey       = "client_id"
	LoggingOrderIDKey        = "order_id"
	LoggingPaymentIDKey      = "payment_id"
	LoggingStatusKey         = "status"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingSweptCountKey     = "swept_count"
)
