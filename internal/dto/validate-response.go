package dto

type ValidateResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
