package password

import (
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
)

// Hash 使用 argon2id 加盐哈希，明文不会被保存或记录
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("password is empty")
	}

	hash, err := argon2id.CreateHash(plaintext, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return hash, nil
}

// Verify 校验密码；不匹配时返回 false 而不是错误，只有哈希本身损坏时才会报错
func Verify(plaintext, hash string) (bool, error) {
	match, _, err := argon2id.CheckHash(plaintext, hash)
	if err != nil {
		return false, fmt.Errorf("check password: %w", err)
	}

	return match, nil
}
