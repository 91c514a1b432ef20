package dto

type CreateToastRequest struct {
	Text    string `json:"text"`
	Style   string `json:"style"`
	Timeout *int64 `json:"timeout"`
}
