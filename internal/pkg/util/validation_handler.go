package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidationError 字段校验失败，response 层统一按 400 返回
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// ValidateDTO 校验失败时汇总所有问题字段
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			issues := make([]string, 0, len(vErrs))
			for _, fe := range vErrs {
				issues = append(issues, fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]", fe.Field(), fe.Tag()))
			}
			return &ValidationError{msg: strings.Join(issues, "; ")}
		}
		return err
	}
	return nil
}
