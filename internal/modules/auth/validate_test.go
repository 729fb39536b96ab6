package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNickname(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		wantErr  error
	}{
		{"hangul", "감사나무", nil},
		{"ascii letters", "grove", nil},
		{"digits", "123456", nil},
		{"mixed", "나무a1", nil},
		{"empty passes shape check", "", nil},
		{"six hangul runes", "가나다라마바", nil},
		{"seven runes too long", "가나다라마바사", errNicknameTooLong},
		{"seven ascii too long", "abcdefg", errNicknameTooLong},
		{"space rejected", "나 무", errNicknameCharset},
		{"symbol rejected", "tree!", errNicknameCharset},
		{"jamo rejected", "ㄱㄴㄷ", errNicknameCharset},
		{"emoji rejected", "나무🌳", errNicknameCharset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ValidateNickname(tt.nickname))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("a-much-longer-password"))
	assert.Equal(t, errPasswordTooShort, ValidatePassword("1234567"))
	assert.Equal(t, errPasswordTooShort, ValidatePassword(""))
}
