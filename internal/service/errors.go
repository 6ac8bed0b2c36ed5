package service

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailExist           = errors.New("邮箱已被注册")
	ErrDomainExist          = errors.New("域名已存在")
	ErrPasswordIncorrect    = errors.New("密码错误")
	ErrRoleInvalid          = errors.New("角色无效")
	ErrCustomerNotFound     = errors.New("客户不存在")
	ErrKeywordNotFound      = errors.New("关键词不存在")
	ErrRecommendNotFound    = errors.New("推荐关键词不存在")
	ErrOverviewNotFound     = errors.New("AI概览不存在")
	ErrPaymentNotFound      = errors.New("付款凭证不存在")
	ErrPaymentStatusInvalid = errors.New("付款状态无效")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	ErrFileTooLarge         = errors.New("文件大小超过限制")
	ErrImageLimitExceeded   = errors.New("最多上传 3 张图片")
	ErrUnauthenticated      = errors.New("未登录或登录已过期")
	ErrForbidden            = errors.New("权限不足：无权访问该资源")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrEmailExist:           Conflict,
	ErrDomainExist:          Conflict,
	ErrPasswordIncorrect:    Unauthorized,
	ErrRoleInvalid:          BadRequest,
	ErrCustomerNotFound:     NotFound,
	ErrKeywordNotFound:      NotFound,
	ErrRecommendNotFound:    NotFound,
	ErrOverviewNotFound:     NotFound,
	ErrPaymentNotFound:      NotFound,
	ErrPaymentStatusInvalid: BadRequest,
	ErrFileNotSupported:     BadRequest,
	ErrFileTooLarge:         BadRequest,
	ErrImageLimitExceeded:   BadRequest,
	ErrUnauthenticated:      Unauthorized,
	ErrForbidden:            Forbidden,
	UnExpectedError:         InternalServerError,
}

// translateDuplicate 把数据库唯一约束冲突翻译成业务错误（1062 为 MySQL 重复键）
func translateDuplicate(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	isDup := errors.Is(err, gorm.ErrDuplicatedKey)
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		isDup = true
	}
	if !isDup {
		return err
	}

	msg := err.Error()
	if strings.Contains(msg, "idx_domain") {
		return ErrDomainExist
	}
	return ErrEmailExist
}
