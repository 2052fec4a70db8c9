package models

// Review is a single customer review. The JSON keys double as the column
// names of the CSV store.
type Review struct {
	ReviewId   string `gorm:"column:review_id;size:36;not null;uniqueIndex" json:"ReviewId"`
	Location   string `gorm:"column:location;size:100;not null;index" json:"Location"`
	Timestamp  string `gorm:"column:timestamp;size:19;not null" json:"Timestamp"`
	ReviewBody string `gorm:"column:review_body;type:text;not null" json:"ReviewBody"`
}

// Sentiment holds polarity scores for a piece of text.
type Sentiment struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// AnnotatedReview is a Review with sentiment computed at read time. It is
// never persisted.
type AnnotatedReview struct {
	Review
	Sentiment Sentiment `json:"Sentiment"`
}
