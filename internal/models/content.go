package models

// Translated is implemented by every content model that is stored as one row per
// language. Rows sharing a logical key are translations of the same item.
type Translated interface {
	LogicalKey() string
	LangID() uint
}
