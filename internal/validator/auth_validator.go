package validator

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-playground/validator/v10"

	"datagen/internal/repository"
	"datagen/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// usernameが既に使用済み
	ErrUsernameAlreadyUsed = errors.New("username already used")

	// refresh tokenが不正
	ErrInvalidRefresh = errors.New("invalid refresh")
)

type authValidator struct {
	users    repository.AppUserRepository
	validate *validation.Validate
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.AppUserRepository) usecase.AuthValidator {
	return &authValidator{
		users:    users,
		validate: validation.New(),
	}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)

	// 必須チェック
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	// username形式（user_idの区切りに使う _ は許可、空白不可）
	if err := v.validate.Var(username, "min=3,max=32,excludesall= "); err != nil {
		return ErrInvalidInput
	}

	// パスワード最低文字数（8）
	if err := v.validate.Var(password, "min=8,max=128"); err != nil {
		return ErrInvalidInput
	}

	// username重複チェック（DBが必要）
	u, err := v.users.FindByUsername(ctx, username)
	if err == nil && u != nil {
		return ErrUsernameAlreadyUsed
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return ErrInvalidInput
	}

	return nil
}

// refresh 入力を検証
func (v *authValidator) ValidateRefresh(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return ErrInvalidRefresh
	}

	return nil
}
