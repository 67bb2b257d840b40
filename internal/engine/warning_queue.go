package engine

import (
	"container/heap"
	"sort"
	"time"

	"github.com/AvaTai/Merge-Dwarfs/internal/domain"
)

// WarningItem обертка для элемента очереди приоритетов
type WarningItem struct {
	Value    domain.FloodWarning
	Priority time.Duration // Момент истечения. Чем меньше, тем раньше уберем.
	Index    int           // Индекс в куче (нужен для update)
}

// warningHeap реализует heap.Interface
type warningHeap []*WarningItem

func (pq warningHeap) Len() int { return len(pq) }

func (pq warningHeap) Less(i, j int) bool {
	// MinHeap по моменту истечения
	return pq[i].Priority < pq[j].Priority
}

func (pq warningHeap) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *warningHeap) Push(x interface{}) {
	n := len(*pq)
	item := x.(*WarningItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *warningHeap) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// WarningQueue - предупреждения о затоплении, не больше одного на клетку
type WarningQueue struct {
	queue   warningHeap
	itemMap map[domain.Position]*WarningItem
}

func NewWarningQueue() *WarningQueue {
	return &WarningQueue{
		queue:   make(warningHeap, 0),
		itemMap: make(map[domain.Position]*WarningItem),
	}
}

// Push добавляет предупреждение. Повтор для той же клетки продлевает срок.
func (q *WarningQueue) Push(w domain.FloodWarning) {
	if item, ok := q.itemMap[w.Pos]; ok {
		if w.ExpiresAt > item.Priority {
			item.Value = w
			item.Priority = w.ExpiresAt
			heap.Fix(&q.queue, item.Index)
		}
		return
	}
	item := &WarningItem{Value: w, Priority: w.ExpiresAt}
	heap.Push(&q.queue, item)
	q.itemMap[w.Pos] = item
}

// PruneExpired убирает все предупреждения со сроком <= now
func (q *WarningQueue) PruneExpired(now time.Duration) int {
	removed := 0
	for q.queue.Len() > 0 && q.queue[0].Priority <= now {
		item := heap.Pop(&q.queue).(*WarningItem)
		delete(q.itemMap, item.Value.Pos)
		removed++
	}
	return removed
}

func (q *WarningQueue) Len() int {
	return q.queue.Len()
}

// Items возвращает копию предупреждений по возрастанию срока
func (q *WarningQueue) Items() []domain.FloodWarning {
	out := make([]domain.FloodWarning, 0, len(q.queue))
	for _, item := range q.queue {
		out = append(out, item.Value)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExpiresAt != out[j].ExpiresAt {
			return out[i].ExpiresAt < out[j].ExpiresAt
		}
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}

// Reset очищает очередь (смена уровня)
func (q *WarningQueue) Reset() {
	q.queue = q.queue[:0]
	q.itemMap = make(map[domain.Position]*WarningItem)
}
