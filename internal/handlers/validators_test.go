package handlers

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func TestHexColor6Validation(t *testing.T) {
	RegisterValidators()
	v := binding.Validator.Engine().(*validator.Validate)

	// gin 的校验引擎以 binding 为标签名
	type colored struct {
		Color string `binding:"hexcolor6"`
	}

	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"six digit hex", "#2196F3", false},
		{"lowercase hex", "#a1b2c3", false},
		{"three digit shorthand rejected", "#FFF", true},
		{"missing hash", "2196F3", true},
		{"non hex chars", "#ZZZZZZ", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(colored{Color: tt.color})
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate %q err = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}
