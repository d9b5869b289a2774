package models

import "time"

type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Address    string  `gorm:"size:100;not null" json:"address"`
	Address2   *string `gorm:"size:100" json:"address2"`
	District   string  `gorm:"size:50;not null" json:"district"`
	City       string  `gorm:"size:50;not null" json:"city"`
	PostalCode string  `gorm:"size:50;not null" json:"postal_code"`
	Phone      *string `gorm:"size:15" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Address) String() string {
	return a.Address
}
