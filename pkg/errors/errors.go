package errors

// ========== 错误码常量定义 ==========

// CodeSuccess 成功码
const (
	CodeSuccess = 200
)

// HTTP层错误码 (400-599)
const (
	CodeInvalidParam = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeServerError  = 500
)

// 业务错误码 (1000+)
const (
	CodeBusinessError = 1000 // 业务规则校验失败（如取消非待审批的套餐申请）
	CodeExternalError = 1001 // 外部协作服务失败（PDF渲染、AI摘要）
)
