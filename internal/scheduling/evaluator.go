package scheduling

import (
	"sort"
	"strings"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
)

// DefaultWindowDays é a janela padrão de "contato próximo". O valor é sempre
// injetado pelos chamadores; a constante existe só como default documentado.
const DefaultWindowDays = 7

type Classification int

const (
	Normal Classification = iota
	Overdue
	Upcoming
)

func (c Classification) String() string {
	switch c {
	case Overdue:
		return "overdue"
	case Upcoming:
		return "upcoming"
	default:
		return "normal"
	}
}

// Classify decide a urgência de contato de um único cliente em relação a um
// instante "now". A classe nunca é armazenada; recalcula-se sob demanda.
// Cliente Inativo é sempre Normal, qualquer que seja a data.
func Classify(c *entity.Client, now time.Time, windowDays int) Classification {
	if c.Status == entity.StatusClienteInativo {
		return Normal
	}
	if c.NextContactDate.IsZero() {
		return Normal
	}

	if c.NextContactDate.Before(now) {
		return Overdue
	}

	window := time.Duration(windowDays) * 24 * time.Hour
	if c.NextContactDate.Sub(now) <= window {
		return Upcoming
	}

	return Normal
}

// Stats agrega a classificação de uma coleção. O total inclui inativos;
// os contadores de atrasado/próximo não.
func Stats(clients []entity.Client, now time.Time, windowDays int) entity.ClientStats {
	stats := entity.ClientStats{TotalClients: len(clients)}

	for i := range clients {
		switch Classify(&clients[i], now, windowDays) {
		case Overdue:
			stats.OverdueContacts++
		case Upcoming:
			stats.UpcomingContacts++
		}
	}

	return stats
}

// Less é o comparador da listagem: inativos sempre por último; entre os
// demais, próximo contato mais cedo primeiro (sem data vai pro fim).
func Less(a, b *entity.Client) bool {
	aInactive := a.Status == entity.StatusClienteInativo
	bInactive := b.Status == entity.StatusClienteInativo
	if aInactive != bInactive {
		return bInactive
	}

	aNext, aHas := a.NextContactDate, !a.NextContactDate.IsZero()
	bNext, bHas := b.NextContactDate, !b.NextContactDate.IsZero()
	if aHas != bHas {
		return aHas
	}
	if !aHas {
		return false
	}
	return aNext.Before(bNext)
}

// Sort ordena in-place pelo comparador Less. Estável, então reordenar uma
// lista já ordenada não muda nada.
func Sort(clients []entity.Client) {
	sort.SliceStable(clients, func(i, j int) bool {
		return Less(&clients[i], &clients[j])
	})
}

type ContactFilter string

const (
	FilterAll      ContactFilter = "all"
	FilterOverdue  ContactFilter = "overdue"
	FilterUpcoming ContactFilter = "upcoming"
)

type Filters struct {
	Search  string              // substring no nome da empresa, sem case
	Status  entity.ClientStatus // vazio = todos
	Contact ContactFilter       // vazio = all
}

// Filter aplica os três predicados da listagem. O filtro de urgência reusa
// Classify, então inativos ficam de fora de overdue/upcoming aqui também.
func Filter(clients []entity.Client, f Filters, now time.Time, windowDays int) []entity.Client {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	result := make([]entity.Client, 0, len(clients))
	for i := range clients {
		c := &clients[i]

		if search != "" && !strings.Contains(strings.ToLower(c.CompanyName), search) {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}

		switch f.Contact {
		case FilterOverdue:
			if Classify(c, now, windowDays) != Overdue {
				continue
			}
		case FilterUpcoming:
			if Classify(c, now, windowDays) != Upcoming {
				continue
			}
		}

		result = append(result, *c)
	}

	return result
}
