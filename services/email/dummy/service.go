package dummymail

import (
	"log"
	"sync"

	"github.com/academica/curricula/core"
)

var (
	mu           sync.Mutex
	SentMessages = make([]core.EmailMessage, 0)
)

type service struct{}

var _ core.EmailService = (*service)(nil)

// NewService returns an EmailService that records rendered messages in
// SentMessages; used by tests.
func NewService() core.EmailService {
	return &service{}
}

func (svc service) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		if err := msg.Render(); err != nil {
			log.Fatal(err)
		}
		if msg.HasRecipients() && msg.HasContent() {
			mu.Lock()
			SentMessages = append(SentMessages, *msg)
			mu.Unlock()
		}
	}
}

// Clear resets the recorded messages between tests.
func Clear() {
	mu.Lock()
	SentMessages = SentMessages[:0]
	mu.Unlock()
}
