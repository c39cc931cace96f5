package types

// ProcessRequest is the multipart form accompanying an uploaded recording
type ProcessRequest struct {
	RecordingID  string `form:"recording_id"`
	UserID       string `form:"user_id" binding:"required"`
	Style        string `form:"style" binding:"required"`
	CustomPrompt string `form:"custom_prompt"`
	Language     string `form:"language"`
}

// RegenerateRequest asks for a stored note to be rewritten in another style
type RegenerateRequest struct {
	Style        string `json:"style" binding:"required"`
	CustomPrompt string `json:"custom_prompt"`
}

// TranslateRequest asks for a stored note's transcript in another language
type TranslateRequest struct {
	TargetLanguage string `json:"target_language" binding:"required"`
}

// ConnectivityRequest flips the offline queue's connectivity state
type ConnectivityRequest struct {
	Online *bool `json:"online" binding:"required"`
}
