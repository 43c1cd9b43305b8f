package code

import "net/http"

// Success codes
// 成功码
var (
	Success        = NewSuss(0, lang{en: "Success", zh_cn: "成功"})
	SuccessCreated = NewSuss(1, lang{en: "Created", zh_cn: "创建成功"}, http.StatusCreated)
	SuccessDeleted = NewSuss(2, lang{en: "Deleted", zh_cn: "删除成功"}, http.StatusNoContent)
)

// Generic error codes
// 通用错误码
var (
	Failed               = NewError(10000000, lang{en: "Request Failed", zh_cn: "请求失败"}, http.StatusInternalServerError)
	ErrorServerInternal  = NewError(10000001, lang{en: "Internal Server Error", zh_cn: "服务内部错误"}, http.StatusInternalServerError)
	ErrorInvalidParams   = NewError(10000002, lang{en: "Invalid Params", zh_cn: "入参错误"}, http.StatusBadRequest)
	ErrorNotFoundAPI     = NewError(10000003, lang{en: "API Not Found", zh_cn: "接口不存在"}, http.StatusNotFound)
	ErrorTooManyRequests = NewError(10000004, lang{en: "Too Many Requests", zh_cn: "请求过多"}, http.StatusTooManyRequests)
	ErrorRequestTimeout  = NewError(10000005, lang{en: "Request Timeout", zh_cn: "请求超时"}, http.StatusGatewayTimeout)
)

// User / auth error codes
// 用户和认证错误码
var (
	ErrorNotUserAuthToken       = NewError(10010001, lang{en: "Missing Auth Token", zh_cn: "缺少认证 Token"}, http.StatusUnauthorized)
	ErrorInvalidUserAuthToken   = NewError(10010002, lang{en: "Invalid Auth Token", zh_cn: "认证 Token 无效"}, http.StatusUnauthorized)
	ErrorUserNotFound           = NewError(10010003, lang{en: "User Not Found", zh_cn: "用户不存在"}, http.StatusNotFound)
	ErrorUserAlreadyExists      = NewError(10010004, lang{en: "User Already Exists", zh_cn: "用户已存在"}, http.StatusConflict)
	ErrorUserPasswordIncorrect  = NewError(10010005, lang{en: "Incorrect Email Or Password", zh_cn: "邮箱或密码错误"}, http.StatusUnauthorized)
	ErrorUserRegisterDisabled   = NewError(10010006, lang{en: "Registration Is Disabled", zh_cn: "注册已关闭"}, http.StatusForbidden)
	ErrorUserTokenGenerate      = NewError(10010007, lang{en: "Failed To Generate Token", zh_cn: "Token 生成失败"}, http.StatusInternalServerError)
	ErrorUserPasswordSame       = NewError(10010008, lang{en: "New Password Must Differ", zh_cn: "新密码不能与旧密码相同"}, http.StatusBadRequest)
	ErrorUserOldPasswordInvalid = NewError(10010009, lang{en: "Old Password Incorrect", zh_cn: "旧密码错误"}, http.StatusBadRequest)
	ErrorUserPasswordMismatch   = NewError(10010010, lang{en: "Password Confirmation Mismatch", zh_cn: "两次输入的密码不一致"}, http.StatusBadRequest)
)

// Resource error codes. ErrorResourceNotFound deliberately covers "absent",
// "soft-deleted" and "not yours to see" so private resources cannot be
// enumerated by status code.
// 资源错误码。ErrorResourceNotFound 故意同时覆盖"不存在"、"已软删除"和
// "无权查看"，避免通过状态码枚举他人私有资源。
var (
	ErrorResourceNotFound  = NewError(10020001, lang{en: "Resource Not Found", zh_cn: "资源不存在"}, http.StatusNotFound)
	ErrorResourceForbidden = NewError(10020002, lang{en: "Operation Not Allowed", zh_cn: "无权执行该操作"}, http.StatusForbidden)
	ErrorResourceType      = NewError(10020003, lang{en: "Unknown Resource Type", zh_cn: "未知资源类型"}, http.StatusBadRequest)
)

// Share error codes
// 分享错误码
var (
	ErrorAlreadyShared     = NewError(10030001, lang{en: "Resource Already Shared With This User", zh_cn: "该资源已分享给此用户"}, http.StatusConflict)
	ErrorShareNotFound     = NewError(10030002, lang{en: "Share Not Found", zh_cn: "分享不存在"}, http.StatusNotFound)
	ErrorShareGone         = NewError(10030003, lang{en: "Share Link Exhausted", zh_cn: "分享链接已失效"}, http.StatusGone)
	ErrorShareGranteeSelf  = NewError(10030004, lang{en: "Cannot Share With Yourself", zh_cn: "不能分享给自己"}, http.StatusBadRequest)
	ErrorSharePermission   = NewError(10030005, lang{en: "Invalid Share Permission", zh_cn: "分享权限无效"}, http.StatusBadRequest)
	ErrorShareNotShareable = NewError(10030006, lang{en: "Resource Type Not Shareable", zh_cn: "该资源类型不支持分享"}, http.StatusBadRequest)
)

// Attachment error codes
// 附件错误码
var (
	ErrorAttachmentNotFound   = NewError(10040001, lang{en: "Attachment Not Found", zh_cn: "附件不存在"}, http.StatusNotFound)
	ErrorAttachmentSaveFailed = NewError(10040002, lang{en: "Attachment Save Failed", zh_cn: "附件保存失败"}, http.StatusInternalServerError)
	ErrorAttachmentReadFailed = NewError(10040003, lang{en: "Attachment Read Failed", zh_cn: "附件读取失败"}, http.StatusInternalServerError)
)
