package types

// SuccessEnvelope wraps every successful payload. Message carries the
// acknowledgment shown to the user after a mutation.
type SuccessEnvelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
