package models

// AuthResponse is returned by the register and login endpoints. On success
// Token carries a compact JWT to be sent back as a bearer token.
type AuthResponse struct {
	Error  APIErrorCode `json:"error"`
	UserID int64        `json:"user_id,omitempty"`
	Token  string       `json:"token,omitempty"`
}

// ClientRegisterRequest maps a per-install UUID to a durable client identity.
type ClientRegisterRequest struct {
	InstallUUID string `json:"install_uuid"`
}

// ClientRegisterResponse returns the server-assigned client identity for an
// installation. Registering the same UUID again returns the same ClientID.
type ClientRegisterResponse struct {
	Error    APIErrorCode `json:"error"`
	ClientID int64        `json:"client_id,omitempty"`
}
