package pipeline

import (
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/aggregate"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
)

// SyntheticSnapshot builds the deterministic placeholder dataset served when
// no upstream fetch ever succeeded. Same shape as a real snapshot, so
// downstream consumers never receive a malformed or absent payload.
func SyntheticSnapshot(today time.Time) *domain.Snapshot {
	forecast := today.Format(normalize.ISODate)
	days := 2

	mk := func(id, subject string, base domain.BaseStatus, status, urgency, owner string) domain.CanonicalTicket {
		return domain.CanonicalTicket{
			ID:           id,
			Subject:      subject,
			Urgency:      urgency,
			BaseStatus:   base,
			Status:       status,
			Owner:        owner,
			OwnerTeam:    "Sustentação",
			CreatedDate:  today,
			ForecastDate: &forecast,
			DaysUntilDue: &days,
			DueCategory:  domain.DueCategoryOK,
		}
	}

	tickets := []domain.CanonicalTicket{
		mk("1001", "Inativação Movidesk - Cliente X", domain.BaseStatusNew, "Novo", "Crítica", "Agente A"),
		mk("1002", "Contexto - Ajuste de SLA", domain.BaseStatusNew, "Novo", "Alta", "Agente B"),
		mk("1003", "Erro na emissão", domain.BaseStatusInAttendance, "Em Atendimento", "Média", "Agente B"),
		mk("1004", "Aguardando - Fornecedor", domain.BaseStatusStopped, "Aguardando", "Alta", "Agente C"),
	}

	snapshot := aggregate.Aggregate(tickets, today, aggregate.Options{})
	snapshot.Synthetic = true
	return snapshot
}
