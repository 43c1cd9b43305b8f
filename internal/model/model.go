// Package model 定义数据模型
package model

import (
	"gorm.io/gorm"
)

// AutoMigrate 按 key 迁移单个模型，dao 层在首次使用某张表时调用
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "User":
		return db.AutoMigrate(User{})

	case "Note":
		return db.AutoMigrate(Note{})

	case "Notebook":
		return db.AutoMigrate(Notebook{})

	case "Contact":
		return db.AutoMigrate(Contact{})

	case "Relationship":
		return db.AutoMigrate(Relationship{})

	case "WorkItem":
		return db.AutoMigrate(WorkItem{})

	case "Memory":
		return db.AutoMigrate(Memory{})

	case "DevSession":
		return db.AutoMigrate(DevSession{})

	case "Attachment":
		return db.AutoMigrate(Attachment{})

	case "UserShare":
		return db.AutoMigrate(UserShare{})

	case "LinkShare":
		return db.AutoMigrate(LinkShare{})
	}
	return nil
}
