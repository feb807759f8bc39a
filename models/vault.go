package models

import "time"

// Vault 用户的工作区，所有资源都挂在某个 vault 下面
type Vault struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID uint64 `gorm:"column:user_id;uniqueIndex:uk_vaults_owner_name;not null" json:"user_id"`
	// 同一个用户下 name 唯一
	Name  string `gorm:"column:name;type:varchar(64);uniqueIndex:uk_vaults_owner_name;not null" json:"name"`
	Title string `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Vault) TableName() string {
	return "vaults"
}
