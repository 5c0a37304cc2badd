package models

import "strings"

// Status service-order workflow state
type Status string

// Workflow states, in workflow order. Any state may be set directly.
const (
	StatusQuote            Status = "Em Orçamento"
	StatusAwaitingApproval Status = "Aguardando Aprovação"
	StatusPending          Status = "Pendente"
	StatusInProgress       Status = "Em Andamento"
	StatusAwaitingPart     Status = "Aguardando Peça"
	StatusPartUnavailable  Status = "Peça Indisponível"
	StatusReady            Status = "Pronto"
	StatusCompleted        Status = "Concluído"
	StatusCancelled        Status = "Cancelado"
)

// statusAliases alternative spellings accepted on input
var statusAliases = map[string]Status{
	"Em Manutenção": StatusInProgress,
}

// AllStatuses returns every workflow state in workflow order
func AllStatuses() []Status {
	return []Status{
		StatusQuote,
		StatusAwaitingApproval,
		StatusPending,
		StatusInProgress,
		StatusAwaitingPart,
		StatusPartUnavailable,
		StatusReady,
		StatusCompleted,
		StatusCancelled,
	}
}

// ParseStatus resolves raw input to a known state, accepting aliases
func ParseStatus(raw string) (Status, bool) {
	raw = strings.TrimSpace(raw)
	if s, ok := statusAliases[raw]; ok {
		return s, true
	}
	for _, s := range AllStatuses() {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// IsFinished reports whether the state belongs to the terminal-success subset,
// the only states in which finished_at is set.
func (s Status) IsFinished() bool {
	return s == StatusReady || s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}
