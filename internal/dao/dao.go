// Package dao 实现数据访问层
package dao

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/model"
	"github.com/evanhugh/assistant-hub-service/pkg/fileurl"
	"github.com/evanhugh/assistant-hub-service/pkg/util"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig 数据库配置（由应用容器从 AppConfig 映射而来，避免反向依赖）
type DatabaseConfig struct {
	Type            string
	Path            string
	UserName        string
	Password        string
	Host            string
	Name            string
	TablePrefix     string
	AutoMigrate     bool
	Charset         string
	ParseTime       bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime string
	ConnMaxIdleTime string
	RunMode         string
}

// Dao 数据访问对象，持有数据库连接与迁移状态
type Dao struct {
	db       *gorm.DB
	ctx      context.Context
	config   *DatabaseConfig
	logger   *zap.Logger
	onceKeys sync.Map
}

// Option Dao 配置选项
type Option func(*Dao)

// WithConfig 注入数据库配置
func WithConfig(c *DatabaseConfig) Option {
	return func(d *Dao) {
		d.config = c
	}
}

// WithLogger 注入日志器
func WithLogger(l *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = l
	}
}

// New 创建 Dao 实例
func New(db *gorm.DB, ctx context.Context, opts ...Option) *Dao {
	d := &Dao{
		db:  db,
		ctx: ctx,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	return d
}

// DB 返回底层 gorm 连接
func (d *Dao) DB() *gorm.DB {
	return d.db
}

// useModel 获取某个模型的查询对象，首次使用时执行迁移
func (d *Dao) useModel(key string) *gorm.DB {
	if _, loaded := d.onceKeys.LoadOrStore(key, true); !loaded {
		if d.config == nil || d.config.AutoMigrate {
			if err := model.AutoMigrate(d.db, key); err != nil {
				d.logger.Error("auto migrate failed",
					zap.String("model", key), zap.Error(err))
			}
		}
	}
	return d.db
}

// NewDBEngine 创建 gorm 数据库引擎
func NewDBEngine(c *DatabaseConfig) (*gorm.DB, error) {

	db, err := gorm.Open(dialector(c), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}
	if c.RunMode == "debug" {
		db.Config.Logger = logger.Default.LogMode(logger.Info)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)

	if d, err := util.ParseDuration(c.ConnMaxLifetime); err == nil {
		sqlDB.SetConnMaxLifetime(d)
	} else {
		sqlDB.SetConnMaxLifetime(time.Minute * 30)
	}
	if d, err := util.ParseDuration(c.ConnMaxIdleTime); err == nil {
		sqlDB.SetConnMaxIdleTime(d)
	} else {
		sqlDB.SetConnMaxIdleTime(time.Minute * 10)
	}

	return db, nil
}

func dialector(c *DatabaseConfig) gorm.Dialector {
	if c.Type == "mysql" {
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		))
	}

	if !fileurl.IsExist(c.Path) {
		_ = fileurl.CreatePath(c.Path, os.ModePerm)
	}
	return sqlite.Open(c.Path)
}
