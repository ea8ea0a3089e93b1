package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-app/internal/domain/usecase/forecast"
	"weather-app/internal/domain/usecase/mapview"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/observability"
)

// UseCaseFactory builds the forecast controller of a new session.
type UseCaseFactory func(sessionID string) forecast.UseCase

// Registry holds the live sessions in memory, nothing survives a restart.
type Registry struct {
	newUseCase UseCaseFactory
	mapOptions mapview.Options
	idleTTL    time.Duration
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(newUseCase UseCaseFactory, mapOptions mapview.Options, idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	return &Registry{
		newUseCase: newUseCase,
		mapOptions: mapOptions,
		idleTTL:    idleTTL,
		now:        time.Now,
		sessions:   make(map[string]*Session),
	}
}

// Resolve returns the session for id, creating one when id is unknown or not a uuid.
// created reports whether the caller must hand out the new id.
func (r *Registry) Resolve(id string) (s *Session, created bool) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.touch(now)
		return s, false
	}

	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	s = newSession(id, r.newUseCase(id), mapview.NewDisplay(r.mapOptions), r.clock)
	r.sessions[id] = s
	observability.SetActiveSessions(len(r.sessions))
	log.Info(msg.GetMessage("session.created"), zap.String("session_id", id))
	return s, true
}

func (r *Registry) clock() time.Time {
	return r.now()
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// ReapIdle closes sessions idle for longer than the TTL with no open socket.
func (r *Registry) ReapIdle() int {
	now := r.now()

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.hub.Clients() == 0 && s.idleFor(now) > r.idleTTL {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	observability.SetActiveSessions(len(r.sessions))
	r.mu.Unlock()

	for _, s := range expired {
		s.close()
		log.Info(msg.GetMessage("session.reaped", r.idleTTL), zap.String("session_id", s.ID))
	}
	return len(expired)
}

// CloseAll tears down every session, used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	observability.SetActiveSessions(0)
	r.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
