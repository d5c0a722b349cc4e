package model

// GenerateRequest represents a password generation request.
// Zero fields fall back to service defaults.
type GenerateRequest struct {
	Length int `json:"length"`
	Tier   int `json:"tier"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Tier     int    `json:"tier"`
}

// ClassifyRequest represents a password classification request.
type ClassifyRequest struct {
	Password string `json:"password"`
}

// ClassifyResponse reports the tier a password satisfies.
type ClassifyResponse struct {
	Tier   int    `json:"tier"`
	Label  string `json:"label"`
	Length int    `json:"length"`
}
