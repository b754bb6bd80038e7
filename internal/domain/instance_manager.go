package domain

import "sync"

// InstanceManager tracks the analyzer instance this process registered as,
// plus the recorder instances it should subscribe to. Interested components
// subscribe and are notified on changes.
type InstanceManager struct {
	CurrentInstance *AnalyzerInstance
	Recorders       *[]AnalyzerInstance
	mu              sync.RWMutex
	subscribers     []chan []AnalyzerInstance
}

func NewInstanceManager() *InstanceManager {
	return &InstanceManager{
		subscribers: []chan []AnalyzerInstance{},
	}
}

func (m *InstanceManager) SetCurrentInstance(instance *AnalyzerInstance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CurrentInstance = instance
}

func (m *InstanceManager) SetRecorders(recorders *[]AnalyzerInstance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.updateSubscribers()
	m.Recorders = recorders
}

func (m *InstanceManager) updateSubscribers() {
	for _, ch := range m.subscribers {
		go func(c chan []AnalyzerInstance) {
			c <- *m.Recorders
		}(ch)
	}
}

func (m *InstanceManager) Subscribe() <-chan []AnalyzerInstance {
	ch := make(chan []AnalyzerInstance)
	m.subscribers = append(m.subscribers, ch)
	return ch
}
