package constvars

const (
	CreateConsultationSuccessMessage = "consultation scheduled successfully"
	GetConsultationSuccessMessage    = "consultations retrieved successfully"
	UpdateStatusSuccessMessage       = "consultation status updated successfully"
	CancelConsultationSuccessMessage = "consultation cancelled successfully"
	RescheduleSuccessMessage         = "consultation rescheduled successfully"
	CreatePaymentOrderSuccessMessage = "payment order created successfully"
	VerifyPaymentSuccessMessage      = "payment verified successfully"
	GetPaymentDetailsSuccessMessage  = "payment details retrieved successfully"
	GetUnreadCountSuccessMessage     = "unread count retrieved successfully"
	MarkReadSuccessMessage           = "consultations marked as read"
	GetLawyerSuccessMessage          = "lawyers retrieved successfully"
	LoginSuccessMessage              = "logged in successfully"
	LogoutSuccessMessage             = "logged out successfully"
)
