package rulesync

import "encoding/json"

// UpdateRulesRequest is the dashboard payload that replaces the rule set.
type UpdateRulesRequest struct {
	// Password is the shared sync password.
	Password string `json:"password"`
	// Rules must be a JSON array of {triggerKeyword, textMessage} objects.
	Rules json.RawMessage `json:"rules" swaggertype:"array,object"`
}

// GenericResponse is a simple standard response wrapper with a human-readable message.
type GenericResponse struct {
	// Message provides a brief status message for the operation.
	Message string `json:"message"`
}
