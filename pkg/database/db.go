package database

import (
	"Quill/config"
	"Quill/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接，进程内只建一次，由 wire 注入到各层
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// 把驱动的唯一键冲突翻译成 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}
