package contract

// ExpirationPresets are the accepted values for CreateNoteRequest.Expiration.
// 'M' approximates a month as 30 days, 'y' a year as 365 days.
var ExpirationPresets = []string{"1m", "10m", "1h", "1d", "1w", "2w", "1M", "3M", "6M", "1y"}

type CreateNoteRequest struct {
	Title            string `json:"title" validate:"omitempty,max=256"`
	Text             string `json:"text" validate:"required,max=100000"`
	Expiration       string `json:"expiration" validate:"omitempty,oneof=1m 10m 1h 1d 1w 2w 1M 3M 6M 1y"`
	BurnAfterReading bool   `json:"burn_after_reading"`
	Password         string `json:"password" validate:"omitempty,max=128"`
}

// CreateNoteResponse carries the external key, the only moment it is
// ever observable. The server keeps no copy.
type CreateNoteResponse struct {
	Key  string `json:"key"`
	Link string `json:"link"`
}

type NoteAccessRequest struct {
	Key      string `json:"key" validate:"required"`
	Password string `json:"password"`
}

type NoteResponse struct {
	Title            string `json:"title"`
	Text             string `json:"text"`
	Timestamp        string `json:"timestamp"`
	ExpirationDate   string `json:"expiration_date,omitempty"`
	BurnAfterReading bool   `json:"burn_after_reading"`
}
