// Package store 保存每种模式最高分的键值存储
package store

// Memory 只在进程内有效的存储
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}
