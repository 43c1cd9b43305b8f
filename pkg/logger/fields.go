package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldResourceID 资源 ID 字段
	FieldResourceID = "resourceId"

	// FieldResourceType 资源类型字段
	FieldResourceType = "resourceType"

	// FieldOperation 操作类型字段
	FieldOperation = "operation"

	// FieldShareID 分享 ID 字段
	FieldShareID = "shareId"

	// FieldLinkID 链接分享 ID 字段
	FieldLinkID = "linkId"

	// FieldGrantee 被分享人字段
	FieldGrantee = "grantee"

	// FieldDecision 授权决策字段
	FieldDecision = "decision"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"
)
