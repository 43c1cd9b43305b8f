// Package domain 定义领域模型与仓库接口
package domain

import "errors"

// Typed domain errors. Handlers map these 1:1 onto pkg/code objects (and
// therefore HTTP statuses), so services never need to format messages for
// transport.
// 领域错误。Handler 层将其一一映射到 pkg/code 对象（进而映射到 HTTP 状态码），
// 服务层无需为传输层拼装消息。
var (
	// ErrNotFound covers resource absent, soft-deleted, and "caller is not
	// allowed to know it exists". The three cases are deliberately
	// indistinguishable to callers.
	// ErrNotFound 同时覆盖资源不存在、已软删除、以及"调用者无权知道其存在"，
	// 三者对调用方刻意不可区分。
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden 仅用于 owner-only 操作（删除、分享管理）被非所有者调用
	ErrForbidden = errors.New("operation forbidden")

	// ErrAlreadyShared 同一 (资源, 被分享人) 已存在生效的用户分享
	ErrAlreadyShared = errors.New("resource already shared with grantee")

	// ErrShareGone 分享链接已耗尽（单次查看已用完或达到最大次数）
	ErrShareGone = errors.New("share link exhausted")

	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists 注册邮箱已被占用
	ErrUserExists = errors.New("user already exists")
)
