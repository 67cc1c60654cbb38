package orchestrator

import "errors"

var (
	// ErrNoCredential возвращается, когда сессионный коллаборатор не
	// предоставил bearer-токен; сетевой вызов при этом не выполняется
	ErrNoCredential = errors.New("orchestrator: no session credential")

	// ErrRefresh возвращается при неуспешном обновлении снапшота
	ErrRefresh = errors.New("orchestrator: snapshot refresh failed")
)
