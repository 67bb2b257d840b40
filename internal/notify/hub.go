package notify

import (
	"sync"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
)

// SubscriberBuffer - сколько событий копится у медленного подписчика, прежде чем мы начнем их терять
const SubscriberBuffer = 256

// Broadcaster занимается только рассылкой событий симуляции подписчикам
// (звук, HUD). Симуляция никогда не ждет подписчика.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: имя подписчика -> личный канал
	subscribers map[string]chan domain.Event
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan domain.Event),
	}
}

// Register создает личный канал подписчика
func (b *Broadcaster) Register(name string) <-chan domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[name]; ok {
		close(old)
	}

	ch := make(chan domain.Event, SubscriberBuffer)
	b.subscribers[name] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[name]; ok {
		close(ch)
		delete(b.subscribers, name)
	}
}

// Publish отправляет событие всем. Переполненный канал просто пропускается.
func (b *Broadcaster) Publish(ev domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// HasSubscriber проверяет, подписан ли кто-то под этим именем
func (b *Broadcaster) HasSubscriber(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[name]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Drain забирает из канала все накопившиеся события, не блокируясь
func Drain(ch <-chan domain.Event) []domain.Event {
	var out []domain.Event
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}
