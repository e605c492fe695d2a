package model

// swagger:model User
type User struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"` // stored lowercased
	Password    string `gorm:"size:100;not null" json:"-"`
	PhoneNumber string `gorm:"size:15;not null" json:"phoneNumber"`
	Avatar      string `gorm:"size:255" json:"avatar"`

	Progress []Progress `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
