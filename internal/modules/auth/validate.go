package auth

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

const (
	// NicknameMaxLen is the nickname cap in runes.
	NicknameMaxLen = 6
	// PasswordMinLen is the minimum password length in bytes.
	PasswordMinLen = 8
)

// Hangul syllables, ASCII letters, digits.
var nicknamePattern = regexp.MustCompile(`^[가-힣a-zA-Z0-9]*$`)

var (
	errNicknameTooLong  = errors.New("별명은 최대 6자까지 가능합니다.")
	errNicknameCharset  = errors.New("별명은 한글, 영문, 숫자만 사용 가능합니다.")
	errPasswordTooShort = errors.New("비밀번호는 8자 이상이어야 합니다.")
)

// ValidateNickname checks length and charset. An empty nickname passes here;
// required-ness is enforced at the binding layer.
func ValidateNickname(nickname string) error {
	if utf8.RuneCountInString(nickname) > NicknameMaxLen {
		return errNicknameTooLong
	}
	if !nicknamePattern.MatchString(nickname) {
		return errNicknameCharset
	}
	return nil
}

// ValidatePassword enforces the minimum password length. Hashing happens
// server-side only; the raw password never persists.
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLen {
		return errPasswordTooShort
	}
	return nil
}
