package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActionKind тип отложенной операции записи.
// Закрытое перечисление: replay диспетчеризуется по kind исчерпывающе,
// payload каждого kind имеет свою типизированную форму.
type ActionKind string

const (
	ActionPropertyInquiry ActionKind = "property_inquiry"
	ActionMilestoneUpdate ActionKind = "milestone_update"
	ActionProjectNote     ActionKind = "project_note"
)

// InquiryPayload данные заявки покупателя по объекту
type InquiryPayload struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
}

// MilestonePayload отметка вехи проекта выполненной/невыполненной
type MilestonePayload struct {
	ProjectID   string `json:"project_id"`
	MilestoneID string `json:"milestone_id"`
	Done        bool   `json:"done"`
}

// NotePayload заметка агента по проекту
type NotePayload struct {
	ProjectID string `json:"project_id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
}

// PendingAction represents one write performed while it could not be
// confirmed by the server. Immutable except for Synced and RetryCount,
// which are owned exclusively by the sync engine.
type PendingAction struct {
	CreatedAt  time.Time       `json:"created_at"`
	ID         string          `json:"id"`
	Kind       ActionKind      `json:"kind"`
	Endpoint   string          `json:"endpoint"`
	Method     string          `json:"method"`
	Payload    json.RawMessage `json:"payload"`
	RetryCount int             `json:"retry_count"`
	Synced     bool            `json:"synced"`
}

// NewPendingAction валидирует payload для данного kind и собирает действие.
// ID строится как zero-padded наносекунды + uuid суффикс: лексикографический
// порядок ключей совпадает с порядком вставки.
func NewPendingAction(kind ActionKind, payload any) (*PendingAction, error) {
	endpoint, method, err := actionRoute(kind, payload)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	now := time.Now()
	return &PendingAction{
		ID:        fmt.Sprintf("%020d-%s", now.UnixNano(), uuid.New().String()[:8]),
		Kind:      kind,
		Endpoint:  endpoint,
		Method:    method,
		Payload:   data,
		CreatedAt: now,
		Synced:    false,
	}, nil
}

// actionRoute проверяет форму payload и возвращает endpoint/method для replay.
// Проверка на границе enqueue: дальше по конвейеру payload считается валидным.
func actionRoute(kind ActionKind, payload any) (endpoint, method string, err error) {
	switch kind {
	case ActionPropertyInquiry:
		p, ok := payload.(InquiryPayload)
		if !ok {
			return "", "", fmt.Errorf("%w: %s requires InquiryPayload", ErrInvalidPayload, kind)
		}
		if p.PropertyID == "" {
			return "", "", fmt.Errorf("%w: inquiry property_id is empty", ErrInvalidPayload)
		}
		if p.Email == "" {
			return "", "", fmt.Errorf("%w: inquiry email is empty", ErrInvalidPayload)
		}
		return fmt.Sprintf("/api/v1/properties/%s/inquiries", p.PropertyID), "POST", nil

	case ActionMilestoneUpdate:
		p, ok := payload.(MilestonePayload)
		if !ok {
			return "", "", fmt.Errorf("%w: %s requires MilestonePayload", ErrInvalidPayload, kind)
		}
		if p.ProjectID == "" || p.MilestoneID == "" {
			return "", "", fmt.Errorf("%w: milestone update needs project_id and milestone_id", ErrInvalidPayload)
		}
		return fmt.Sprintf("/api/v1/projects/%s/milestones/%s", p.ProjectID, p.MilestoneID), "PUT", nil

	case ActionProjectNote:
		p, ok := payload.(NotePayload)
		if !ok {
			return "", "", fmt.Errorf("%w: %s requires NotePayload", ErrInvalidPayload, kind)
		}
		if p.ProjectID == "" {
			return "", "", fmt.Errorf("%w: note project_id is empty", ErrInvalidPayload)
		}
		if p.Text == "" {
			return "", "", fmt.Errorf("%w: note text is empty", ErrInvalidPayload)
		}
		return fmt.Sprintf("/api/v1/projects/%s/notes", p.ProjectID), "POST", nil
	}

	return "", "", fmt.Errorf("%w: unknown action kind %q", ErrInvalidPayload, kind)
}

// Clone создает глубокую копию действия
func (a *PendingAction) Clone() *PendingAction {
	payload := make(json.RawMessage, len(a.Payload))
	copy(payload, a.Payload)

	clone := *a
	clone.Payload = payload
	return &clone
}
