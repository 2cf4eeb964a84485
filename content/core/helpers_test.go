package core

import "strconv"

// fixedRand always returns the same draw.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type mapStore struct {
	values map[string]string
	sets   int
}

func newMapStore() *mapStore {
	return &mapStore{values: map[string]string{}}
}

func (s *mapStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *mapStore) Set(key, value string) error {
	s.sets++
	s.values[key] = value
	return nil
}

func (s *mapStore) int(key string) int {
	v, _ := strconv.Atoi(s.values[key])
	return v
}

type recorder struct {
	notices []Notice
}

func (r *recorder) Notify(n Notice) {
	r.notices = append(r.notices, n)
}

func (r *recorder) count(kind NoticeKind) int {
	n := 0
	for _, it := range r.notices {
		if it.Kind == kind {
			n++
		}
	}
	return n
}
