package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 负责分配实体ID
// 实体数据按类型分别保存在 Store 中，EntityManager 只保证ID全局唯一
type EntityManager struct {
	nextID uint64
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1, // ID从1开始,0保留为无效ID
	}
}

// CreateEntity 分配新的实体ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	return id
}

// Reset 重置ID分配（重新开局时使用）
func (em *EntityManager) Reset() {
	em.nextID = 1
}

// Store 按插入顺序保存同一类型的实体
//
// 与旧的“标记删除 + 帧末清理”不同，Remove 立即生效：
// 同一帧内后续的遍历不会再看到已删除的实体。
type Store[T any] struct {
	order []EntityID     // 插入顺序
	items map[EntityID]T // ID -> 实体
}

// NewStore 创建空的实体集合
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		order: make([]EntityID, 0, 32),
		items: make(map[EntityID]T),
	}
}

// Add 添加实体，ID已存在时替换数据但保持原顺序
func (s *Store[T]) Add(id EntityID, item T) {
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = item
}

// Remove 立即删除实体
// 返回 false 表示实体不存在（已被删除），调用方可以安全忽略
func (s *Store[T]) Remove(id EntityID) bool {
	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get 获取实体
func (s *Store[T]) Get(id EntityID) (T, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Has 检查实体是否存在
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.items[id]
	return ok
}

// Len 返回实体数量
func (s *Store[T]) Len() int {
	return len(s.order)
}

// IDs 返回按插入顺序排列的ID副本
func (s *Store[T]) IDs() []EntityID {
	ids := make([]EntityID, len(s.order))
	copy(ids, s.order)
	return ids
}

// Items 返回按插入顺序排列的实体副本
func (s *Store[T]) Items() []T {
	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id])
	}
	return result
}

// Each 按插入顺序遍历实体
//
// 遍历基于调用时的ID快照：回调中删除的实体不会再被访问，
// 回调中新增的实体本次不会被访问。回调返回 false 时停止遍历。
func (s *Store[T]) Each(fn func(id EntityID, item T) bool) {
	for _, id := range s.IDs() {
		item, ok := s.items[id]
		if !ok {
			continue
		}
		if !fn(id, item) {
			return
		}
	}
}

// Find 返回第一个满足条件的实体（按插入顺序）
func (s *Store[T]) Find(pred func(item T) bool) (EntityID, T, bool) {
	for _, id := range s.order {
		item := s.items[id]
		if pred(item) {
			return id, item, true
		}
	}
	var zero T
	return 0, zero, false
}

// RemoveIf 删除所有满足条件的实体，返回删除数量
func (s *Store[T]) RemoveIf(pred func(item T) bool) int {
	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		if pred(s.items[id]) {
			delete(s.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

// Clear 删除所有实体
func (s *Store[T]) Clear() {
	s.order = s.order[:0]
	clear(s.items)
}
