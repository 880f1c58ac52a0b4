package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/smart-talent/internal/models"
)

var ErrSessionNotFound = errors.New("interview session not found")

// SessionRepository stores mock interview sessions between requests. Each
// session belongs to one browser and is only touched by that browser's
// in-flight request.
type SessionRepository interface {
	FindByID(id uuid.UUID) (*models.MockInterviewSession, error)
	Save(session *models.MockInterviewSession) error
	Delete(id uuid.UUID) error
}

type gormSessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &gormSessionRepository{db: db}
}

func (r *gormSessionRepository) FindByID(id uuid.UUID) (*models.MockInterviewSession, error) {
	var session models.MockInterviewSession
	err := r.db.
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

func (r *gormSessionRepository) Save(session *models.MockInterviewSession) error {
	session.UpdatedAt = time.Now()
	for i := range session.Responses {
		if session.Responses[i].ID == uuid.Nil {
			session.Responses[i].ID = uuid.New()
		}
		session.Responses[i].SessionID = session.ID
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(session).Error; err != nil {
			return err
		}
		// A restarted session has an empty log; drop whatever was stored.
		if len(session.Responses) == 0 {
			return tx.Where("session_id = ?", session.ID).Delete(&models.MockResponse{}).Error
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *gormSessionRepository) Delete(id uuid.UUID) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&models.MockResponse{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.MockInterviewSession{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type memorySessionRepository struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*models.MockInterviewSession
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemorySessionRepository keeps sessions in process memory. Sessions are
// lost on restart, and a session not saved for ttl is dropped. A ttl of zero
// keeps sessions forever.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]*models.MockInterviewSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *memorySessionRepository) FindByID(id uuid.UUID) (*models.MockInterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok || r.expired(session, r.now()) {
		return nil, ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (r *memorySessionRepository) Save(session *models.MockInterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	session.UpdatedAt = now
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *memorySessionRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *memorySessionRepository) expired(session *models.MockInterviewSession, now time.Time) bool {
	return r.ttl > 0 && now.Sub(session.UpdatedAt) > r.ttl
}

// sweep drops expired sessions, at most once per ttl/10. Callers hold mu.
func (r *memorySessionRepository) sweep(now time.Time) {
	if r.ttl <= 0 || now.Sub(r.lastSweep) < r.ttl/10 {
		return
	}
	r.lastSweep = now

	for id, session := range r.sessions {
		if r.expired(session, now) {
			delete(r.sessions, id)
		}
	}
}

func cloneSession(s *models.MockInterviewSession) *models.MockInterviewSession {
	out := *s
	out.Responses = make([]models.MockResponse, len(s.Responses))
	copy(out.Responses, s.Responses)
	if s.CurrentQuestion != nil {
		q := *s.CurrentQuestion
		out.CurrentQuestion = &q
	}
	if s.IdealAnswer != nil {
		a := *s.IdealAnswer
		out.IdealAnswer = &a
	}
	return &out
}
