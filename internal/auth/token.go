package auth

import "context"

// Пакет auth - поверхность внешнего сессионного коллаборатора.
// Движок бронирования сам не добывает и не обновляет учётные данные:
// он только читает bearer-токен, положенный в контекст запроса.

type ctxKey int

const tokenKey ctxKey = iota

// WithToken кладет bearer-токен в контекст
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// FromContext возвращает bearer-токен из контекста
func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// ContextTokenSource реализация TokenSource оркестратора поверх контекста
type ContextTokenSource struct{}

// Token возвращает токен из контекста запроса
func (ContextTokenSource) Token(ctx context.Context) (string, bool) {
	return FromContext(ctx)
}
