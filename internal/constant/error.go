package constant

import (
	"errors"
	"net/http"
)

// 自定义错误
var (
	// 通用错误
	ErrInternalError    = errors.New("内部错误")
	ErrInvalidParams    = errors.New("参数错误")
	ErrDatabaseError    = errors.New("数据库错误")
	ErrInvalidOperation = errors.New("无效的操作")
	ErrRecordDuplicate  = errors.New("记录重复")
	ErrRecordNotFound   = errors.New("记录不存在")
	ErrRecordIDEmpty    = errors.New("ID不能为空")
	ErrSerializeError   = errors.New("序列化错误")

	// 导出相关错误
	ErrUnsupportedFormat = errors.New("不支持的导出格式")
	ErrRenderFailed      = errors.New("文档渲染失败")

	// 发文相关错误
	ErrTransmittalEmpty  = errors.New("发文清单为空")
	ErrMailNotConfigured = errors.New("邮件服务未配置")

	// 字典错误
	ErrDictNotConfigured = errors.New("字典未配置")
)

// 获取错误对应的HTTP状态码
func GetErrorCode(err error) int {
	switch err {
	// 通用错误
	case ErrInternalError:
		return http.StatusInternalServerError
	case ErrInvalidParams:
		return http.StatusBadRequest
	case ErrDatabaseError:
		return http.StatusInternalServerError
	case ErrInvalidOperation:
		return http.StatusBadRequest
	case ErrRecordDuplicate:
		return http.StatusBadRequest
	case ErrRecordNotFound:
		return http.StatusNotFound
	case ErrRecordIDEmpty:
		return http.StatusBadRequest
	case ErrSerializeError:
		return http.StatusInternalServerError

	// 导出相关错误
	case ErrUnsupportedFormat:
		return http.StatusBadRequest
	case ErrRenderFailed:
		return http.StatusInternalServerError

	// 发文相关错误
	case ErrTransmittalEmpty:
		return http.StatusBadRequest
	case ErrMailNotConfigured:
		return http.StatusInternalServerError

	// 字典相关错误
	case ErrDictNotConfigured:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
