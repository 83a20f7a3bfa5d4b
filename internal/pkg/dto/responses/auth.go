package responses

type Login struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
