package models

// Inquiry represents a question submitted by a family member or other user
type Inquiry struct {
	BaseModel
	UserID  string `gorm:"size:36;index" json:"userId"`
	Message string `gorm:"type:text;not null" json:"message"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
