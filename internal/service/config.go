// Package service 实现业务逻辑层
package service

// ServiceConfig 服务层配置
type ServiceConfig struct {
	User  UserServiceConfig  // 用户相关配置
	Share ShareServiceConfig // 分享相关配置
}

// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	RegisterIsEnable bool // 注册是否启用
}

// ShareServiceConfig 分享服务配置
type ShareServiceConfig struct {
	LinkTokenBytes int    // 链接 Token 的随机字节数
	PublicBaseURL  string // 对外展示的链接前缀，空则只返回 token
}
