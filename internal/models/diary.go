package models

// DiaryModel is one user's dated set of up to three short gratitude statements.
// Content is stored as a JSON string array; each element is trimmed, non-empty
// and at most 100 characters. LikeCount is denormalized and kept in sync with
// diary_likes inside the toggle transaction.
type DiaryModel struct {
	Base
	UserID    string      `json:"user_id"    gorm:"type:char(36);index;not null"`
	Content   StringArray `json:"content"    gorm:"type:json;not null"`
	LikeCount int         `json:"like_count" gorm:"not null;default:0"`

	Author *ProfileModel `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

func (DiaryModel) TableName() string { return "diaries" }

// DiaryLikeModel records one user's appreciation for one diary entry.
// The (user_id, diary_id) pair is unique; existence means "liked".
type DiaryLikeModel struct {
	Base
	UserID  string `json:"user_id"  gorm:"type:char(36);uniqueIndex:idx_user_diary;not null"`
	DiaryID string `json:"diary_id" gorm:"type:char(36);uniqueIndex:idx_user_diary;index;not null"`
}

func (DiaryLikeModel) TableName() string { return "diary_likes" }
