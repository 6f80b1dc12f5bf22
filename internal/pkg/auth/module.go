package auth

import "go.uber.org/fx"

// Module provides authentication primitives via fx.
var Module = fx.Provide(newPasswordHasher)

func newPasswordHasher() PasswordHasher {
	return NewPBKDF2Hasher(0)
}
