package store

import "sync"

type memory struct {
	mutex       sync.RWMutex
	preferences map[string]Preference
}

// NewMemory returns a throwaway repository, used in demo mode
func NewMemory() Repository {
	return &memory{preferences: make(map[string]Preference)}
}

func (m *memory) LyricID(url string) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if preference, ok := m.preferences[url]; ok && preference.LyricID > 0 {
		return preference.LyricID, nil
	}
	return 0, ErrNotFound
}

func (m *memory) SetLyricID(url string, id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	preference := m.preferences[url]
	preference.VideoURL, preference.LyricID = url, id
	m.preferences[url] = preference
	return nil
}

func (m *memory) Delay(url string) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if preference, ok := m.preferences[url]; ok && preference.HasDelay {
		return preference.DelayMs, nil
	}
	return 0, ErrNotFound
}

func (m *memory) SetDelay(url string, ms int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	preference := m.preferences[url]
	preference.VideoURL, preference.DelayMs, preference.HasDelay = url, ms, true
	m.preferences[url] = preference
	return nil
}

func (m *memory) Close() error {
	return nil
}
