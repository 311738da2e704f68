package audit

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/styllus/barber-site/internal/timezone"
)

type Entry struct {
	ID       int       `json:"id"`
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id,omitempty"`
	Metadata string    `json:"metadata,omitempty"`
	At       time.Time `json:"at"`
}

// Logger mantém a trilha de auditoria em um buffer circular em memória.
// Sem banco, a trilha vive e morre com o processo, como todo o resto.
type Logger struct {
	mu      sync.Mutex
	nextID  int
	entries []Entry
	max     int
}

func New(max int) *Logger {
	if max <= 0 {
		max = 500
	}
	return &Logger{max: max}
}

func (l *Logger) Log(actor, action, entity, entityID string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.entries = append(l.entries, Entry{
		ID:       l.nextID,
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
		At:       timezone.Now(),
	})

	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
	return nil
}

// Recent devolve as últimas entradas, da mais nova para a mais antiga.
func (l *Logger) Recent(limit int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}

	out := make([]Entry, 0, limit)
	for i := len(l.entries) - 1; i >= len(l.entries)-limit; i-- {
		out = append(out, l.entries[i])
	}
	return out
}
