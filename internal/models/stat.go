package models

import "time"

// Stat is one language variant of a homepage statistic ("12,000 happy clients").
// Only the label is translated; the numeric value is shared.
type Stat struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StatID     string    `gorm:"column:stat_id;uniqueIndex:idx_stats_key_lang;not null;index" json:"statId"`
	LanguageID uint      `gorm:"uniqueIndex:idx_stats_key_lang;not null;index" json:"languageId"`
	Language   *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Label      string    `gorm:"not null" json:"label" example:"Happy Clients"`
	Value      int       `gorm:"not null" json:"value" example:"12000"`
	Icon       string    `json:"icon"`
	IsActive   bool      `gorm:"index;default:true" json:"isActive"`
	SortOrder  int       `gorm:"column:sort_order;index" json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Stat) TableName() string {
	return "stats"
}

func (s Stat) LogicalKey() string { return s.StatID }
func (s Stat) LangID() uint       { return s.LanguageID }
