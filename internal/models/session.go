package models

// Session is the persisted admin session record under the adminToken key.
// It is valid iff present, parseable and now <= ExpiresAt; any activity
// while valid slides ExpiresAt forward.
type Session struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"` // epoch milliseconds
	LoginTime int64  `json:"loginTime"` // epoch milliseconds
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	LoginTime int64  `json:"loginTime"`
}

// SessionStatus reports whether the current session is still valid
type SessionStatus struct {
	Authenticated bool  `json:"authenticated"`
	ExpiresAt     int64 `json:"expiresAt,omitempty"`
}

// SidebarSetting is the persisted admin-sidebar-collapsed flag.
type SidebarSetting struct {
	Collapsed bool `json:"collapsed"`
}
