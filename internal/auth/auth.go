// Package auth сравнивает учётные данные независимо от HTTP-слоя.
package auth

import "crypto/subtle"

// Match сравнивает предъявленную пару логин/пароль с настроенной.
// Сравнение выполняется за константное время.
func Match(gotUser, gotPass, wantUser, wantPass string) bool {
	u := subtle.ConstantTimeCompare([]byte(gotUser), []byte(wantUser))
	p := subtle.ConstantTimeCompare([]byte(gotPass), []byte(wantPass))
	return u&p == 1
}
