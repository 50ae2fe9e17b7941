package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColor6 = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RegisterValidators 注册自定义校验规则
// hexcolor6: 颜色必须为 # 加6位十六进制（标准库的 hexcolor 允许3位缩写，这里不允许）
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return hexColor6.MatchString(fl.Field().String())
		})
	}
}
