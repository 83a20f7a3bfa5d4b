package responses

type Lawyer struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImage    string `json:"profile_image,omitempty"`
	Specialization  string `json:"specialization,omitempty"`
	ConsultationFee int64  `json:"consultation_fee"`
	Currency        string `json:"currency"`
	Verified        bool   `json:"verified"`
}
