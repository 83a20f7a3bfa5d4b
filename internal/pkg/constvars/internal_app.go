package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	MongoCollectionConsultations = "consultations"
	MongoCollectionLawyers       = "lawyers"
	MongoCollectionUsers         = "users"
)

const (
	URLParamConsultationID = "consultationID"
	URLParamLawyerID       = "lawyerID"
)

const (
	CurrencyIndianRupee = "INR"

	// Razorpay expresses amounts in the currency's minor unit.
	MinorUnitsPerRupee = 100
)

const (
	ConsultationEventExchange      = "legalconnect.events"
	ConsultationStatusChangedTopic = "consultation.status.changed"
)

const (
	SweepLeaderLockKey = "consultation-sweep:leader"
)

const ResponseUnknown = "unknown"
