package models

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserInfo is the public identity pair echoed back to the client after a
// successful login. The client carries it on every subsequent request;
// the server holds no session state.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AuthResponse is the body of a successful POST /auth.
type AuthResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}

// RegisterResponse is the body of a successful PUT /auth.
type RegisterResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// SaveReadingResponse is the body of a successful POST /blood.
type SaveReadingResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// OCRResponse is the body of a successful POST /ocr. Channel values are
// returned as the trimmed, unparsed strings extracted from the
// recognition reply; conversion to numbers is the caller's concern.
type OCRResponse struct {
	Success bool   `json:"success"`
	High    string `json:"high"`
	Low     string `json:"low"`
	Plus    string `json:"plus"`
}
