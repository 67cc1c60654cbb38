package orchestrator

import (
	"context"
	"sync"
)

// Factory создает оркестратор для диетолога (загрузка политики и т.п.)
type Factory func(ctx context.Context, providerID int64) (*Orchestrator, error)

// Registry ленивый реестр оркестраторов по диетологам.
// Инварианты оркестратора (одна отправка в полёте, поколения обновлений)
// действуют на каждый экземпляр независимо; межэкземплярных блокировок
// нет - арбитраж одновременных бронирований выполняет удалённое хранилище.
type Registry struct {
	factory Factory

	mu        sync.Mutex
	instances map[int64]*Orchestrator
}

// NewRegistry создает реестр с фабрикой оркестраторов
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory:   factory,
		instances: make(map[int64]*Orchestrator),
	}
}

// Get возвращает оркестратор диетолога, создавая его при первом обращении
func (r *Registry) Get(ctx context.Context, providerID int64) (*Orchestrator, error) {
	r.mu.Lock()
	if inst, ok := r.instances[providerID]; ok {
		r.mu.Unlock()
		return inst, nil
	}
	r.mu.Unlock()

	// фабрика ходит в хранилище политик, поэтому вызывается вне мьютекса
	inst, err := r.factory(ctx, providerID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// параллельный Get мог успеть создать экземпляр первым
	if existing, ok := r.instances[providerID]; ok {
		return existing, nil
	}
	r.instances[providerID] = inst
	return inst, nil
}

// Invalidate сбрасывает оркестратор диетолога; следующий Get построит
// его заново со свежей политикой
func (r *Registry) Invalidate(providerID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, providerID)
}
