package user

import (
	"github.com/go-playground/validator/v10"
)

// 表单校验失败时给用户看的字段级错误消息
var fieldMessages = map[string]map[string]string{
	"Username": {
		"required": "Username is required.",
		"username": "Enter only letters, numbers and underscores.",
	},
	"Email": {
		"required": "Email is required.",
		"email":    "Enter a valid email address.",
	},
	"Password": {
		"required": "Password is required.",
		"min":      "Password must be at least 6 characters.",
	},
	"Password2": {
		"required": "Please confirm your password.",
		"eqfield":  "Passwords must match.",
	},
}

// formErrors 将校验错误转换为字段到消息的映射
func formErrors(err error) map[string]string {
	out := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "Invalid form data."
		return out
	}
	for _, fe := range validationErrors {
		if messages, ok := fieldMessages[fe.Field()]; ok {
			if message, ok := messages[fe.Tag()]; ok {
				out[fe.Field()] = message
				continue
			}
		}
		out[fe.Field()] = "This field is invalid."
	}
	return out
}
