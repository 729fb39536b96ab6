package auth

import "errors"

// User-facing sentinel errors. Messages are surfaced verbatim by the handler,
// so they stay in product language.
var (
	errEmailTaken         = errors.New("이미 사용 중인 이메일입니다.")
	errNicknameTaken      = errors.New("이미 사용 중인 별명입니다.")
	errInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다.")
)
