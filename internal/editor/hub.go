package editor

import (
	"sync"

	"github.com/google/uuid"
)

// Message types exchanged between the editor and its preview.
const (
	TypeUpdatePageConfig = "UPDATE_PAGE_CONFIG"
	TypeSelectSection    = "SELECT_SECTION"
)

// Message is one event on a preview or editor stream. After every mutation
// the full page config travels as the payload; the preview never applies
// diffs.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type subscriber struct {
	id string
	ch chan Message
}

// Hub fans messages out to the subscribers of one page's streams. Each
// subscriber holds a one-slot mailbox: when a subscriber lags, older
// messages are dropped so the newest full snapshot always wins.
type Hub struct {
	mu   sync.Mutex
	subs map[string]*subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]*subscriber)}
}

// Subscribe registers a new stream and returns its channel and a cancel
// function. The channel closes when cancel runs.
func (h *Hub) Subscribe() (<-chan Message, func()) {
	sub := &subscriber{id: uuid.NewString(), ch: make(chan Message, 1)}

	h.mu.Lock()
	h.subs[sub.id] = sub
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[sub.id]; ok {
			delete(h.subs, sub.id)
			close(sub.ch)
		}
	}
	return sub.ch, cancel
}

// Broadcast delivers the message to every subscriber, replacing any undelivered
// message in a full mailbox.
func (h *Hub) Broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		select {
		case sub.ch <- msg:
		default:
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- msg
		}
	}
}

// SubscriberCount reports how many streams are attached.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
