package models

// SummaryModel stores a normalized summarization result owned by a user.
// UserName and UserMail are denormalized at save time so list responses
// don't need a join.
type SummaryModel struct {
	Base
	Title        string      `json:"title"         gorm:"not null;default:'Untitled'"`
	OriginalText string      `json:"original_text" gorm:"type:longtext"`
	Summary      string      `json:"summary"       gorm:"type:longtext;not null"`
	Keywords     StringArray `json:"keywords"      gorm:"type:longtext"`
	WordCount    int         `json:"word_count"`
	UserID       string      `json:"user_id"       gorm:"type:char(36);index;not null"`
	UserName     string      `json:"user_name"`
	UserMail     string      `json:"user_mail"`
}

func (SummaryModel) TableName() string { return "summaries" }
