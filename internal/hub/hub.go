package hub

import "sync"

// ジョブ状況をユーザーへpushするイベント。
type Event struct {
	Type        string `json:"type"`
	ParentJobID string `json:"parentJobId,omitempty"`
	Status      string `json:"status,omitempty"`
	Message     string `json:"message"`
}

// ユーザーごとの購読チャネルへfan-outする。
// 受信が詰まっている購読者はイベントを落とす（ブロックしない）。
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func New() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe は購読チャネルと解除関数を返す。
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan Event]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[userID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, userID)
			}
		}
		h.mu.Unlock()
		close(ch)
	}

	return ch, cancel
}

func (h *Hub) Publish(userID string, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[userID] {
		select {
		case ch <- ev:
		default:
		}
	}
}
