package model

// Review represents a single book review owned by a user.
//
// ReviewDate travels as the client's date string and is stored verbatim so
// that a round trip returns exactly what was submitted. ISBN is only used by
// clients to derive a cover-image URL.
type Review struct {
	ReviewID    uint   `json:"review_id" gorm:"column:review_id;primaryKey"`
	UserID      uint   `json:"user_id" gorm:"column:user_id;not null;index"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Author      string `json:"author" gorm:"size:255;not null"`
	Description string `json:"description"`
	Opinion     string `json:"opinion"`
	ReviewDate  string `json:"review_date" gorm:"column:review_date;size:32;not null"`
	ISBN        string `json:"isbn" gorm:"column:isbn;size:32"`
	Rating      int    `json:"rating"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
