package models

import (
	"gorm.io/gorm"
)

// Recording represents one fully processed voice note
type Recording struct {
	gorm.Model
	RecordingID         string  `json:"recording_id" gorm:"uniqueIndex;not null"` // client-generated, stable across retries
	UserID              string  `json:"user_id" gorm:"index;not null"`
	AudioPath           string  `json:"audio_path"` // object path {userId}/{recordingId}{ext}
	AudioURL            string  `json:"audio_url"`
	OriginalTranscript  string  `json:"original_transcript" gorm:"type:text"`
	EnhancedTranscript  string  `json:"enhanced_transcript" gorm:"type:text"`
	Language            string  `json:"language"`
	Style               string  `json:"style"`
	DurationSeconds     float64 `json:"duration_seconds"`
	WordCount           int     `json:"word_count"`
	CharacterCount      int     `json:"character_count"`
	CostEstimate        float64 `json:"cost_estimate"`
	EnhancementDegraded bool    `json:"enhancement_degraded"` // enhancement failed, original transcript kept
}

// TableName specifies the table name for GORM
func (Recording) TableName() string {
	return "recordings"
}
