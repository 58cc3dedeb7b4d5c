package domain

type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	City    string `json:"city"`
	Days    int    `json:"days"`
	Cover   string `json:"cover"`
	Date    string `json:"date"`
}
