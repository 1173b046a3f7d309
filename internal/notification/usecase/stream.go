package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/shandysiswandi/academia/internal/notification/entity"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

// StreamEvent is a notification pushed over SSE.
type StreamEvent struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Message   string              `json:"message"`
	Type      string              `json:"type"`
	Data      valueobject.JSONMap `json:"data"`
	CreatedAt time.Time           `json:"created_at"`
}

type subscriber struct {
	ch chan StreamEvent
}

// Stream registers a subscriber for the current admin. The channel closes
// once ctx is done.
func (s *Usecase) Stream(ctx context.Context) (<-chan StreamEvent, error) {
	adminID, err := s.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	sub := &subscriber{ch: make(chan StreamEvent, 10)}

	s.streamMu.Lock()
	if s.streams[adminID] == nil {
		s.streams[adminID] = make(map[*subscriber]struct{})
	}
	s.streams[adminID][sub] = struct{}{}
	s.streamMu.Unlock()

	go func() {
		<-ctx.Done()
		s.streamMu.Lock()
		if subs := s.streams[adminID]; subs != nil {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(s.streams, adminID)
			}
		}
		close(sub.ch)
		s.streamMu.Unlock()
	}()

	return sub.ch, nil
}

// push delivers to open streams without blocking; slow readers miss events.
func (s *Usecase) push(ns ...entity.Notification) {
	s.streamMu.RLock()
	defer s.streamMu.RUnlock()

	for _, n := range ns {
		evt := StreamEvent{
			ID:        strconv.FormatInt(n.ID, 10),
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type.String(),
			Data:      n.Data,
			CreatedAt: n.CreatedAt,
		}
		for sub := range s.streams[n.RecipientID] {
			select {
			case sub.ch <- evt:
			default:
			}
		}
	}
}
