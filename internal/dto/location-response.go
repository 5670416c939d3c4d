package dto

import "encoding/json"

// LocationResponse is the ViaCEP payload. The directory answers unknown codes
// with 200 and an "erro" field, whose value has been both true and "true".
type LocationResponse struct {
	Cep    string          `json:"cep"`
	Locale string          `json:"localidade"`
	State  string          `json:"uf"`
	Error  json.RawMessage `json:"erro,omitempty"`
}

// NotFound reports whether the "erro" marker was present at all.
func (r LocationResponse) NotFound() bool {
	return len(r.Error) > 0
}
