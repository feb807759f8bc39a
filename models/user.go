package models

import "time"

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex:uk_users_email;not null" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
