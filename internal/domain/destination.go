package domain

type Destination struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Temperature string `json:"temperature"`
	Season      string `json:"season"`
	Image       string `json:"image"`
	Highlight   string `json:"highlight"`
}
