package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      UserRole  `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsClient() bool {
	return s.Role == RoleClient
}

func (s *Session) IsLawyer() bool {
	return s.Role == RoleLawyer
}
