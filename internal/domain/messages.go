package domain

// Wire messages are zh-CN, matching the client this API serves.
const (
	MsgMissingParams       = "缺少必要参数"
	MsgEmployeeIDFormat    = "工号必须是7位数字"
	MsgInvalidUser         = "用户无效"
	MsgAccountNotFound     = "账号不存在，请先注册"
	MsgNameMismatch        = "姓名与工号不匹配"
	MsgAccountExists       = "账号已存在，请直接登录"
	MsgUserNotFound        = "用户不存在"
	MsgUserInfoMismatch    = "用户信息不匹配"
	MsgNoteEmpty           = "标题和内容不能为空"
	MsgNoteNotFound        = "笔记不存在"
	MsgMissingNoteID       = "缺少noteId参数"
	MsgMissingWrongID      = "缺少wrongId参数"
	MsgMissingExamRecordID = "缺少examRecordId参数"
	MsgExamNotFound        = "考试记录不存在"
	MsgExamPassed          = "恭喜！考试通过！"
	MsgExamFailed          = "继续努力！"

	MsgLoginFailed    = "登录失败"
	MsgRegisterFailed = "注册失败"
	MsgDeleteFailed   = "注销失败"
	MsgSaveFailed     = "保存失败"
	MsgQueryFailed    = "查询失败"
	MsgStatsFailed    = "统计失败"
)
