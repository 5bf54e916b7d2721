package assistant

// ResponseType classifies what the UI should do with a response.
type ResponseType string

const (
	TypeData          ResponseType = "data"
	TypeNavigation    ResponseType = "navigation"
	TypeAction        ResponseType = "action"
	TypeClarification ResponseType = "clarification"
	TypeSuccess       ResponseType = "success"
	TypeError         ResponseType = "error"
	TypeUnknown       ResponseType = "unknown"
	TypeRequiresMpin  ResponseType = "requires_mpin"
)

// Response is the assistant's answer to one query. RequiresMpin is true
// exactly when Type is TypeRequiresMpin, and in that case Data carries the
// signed pending action needed to finish the deferred step later.
type Response struct {
	Type         ResponseType `json:"type"`
	TextResponse string       `json:"textResponse"`
	Target       string       `json:"target,omitempty"`
	RequiresMpin bool         `json:"requiresMpin"`
	Data         any          `json:"data,omitempty"`
}

// PendingAction is the deferred-action payload handed to the client while it
// collects the MPIN. Action and Entities are informational; Token is the
// authoritative, tamper-evident copy the completion call must present.
type PendingAction struct {
	Action   Intent   `json:"action"`
	Entities Entities `json:"entities"`
	Token    string   `json:"token"`
}
