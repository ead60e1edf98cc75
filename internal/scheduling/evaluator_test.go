package scheduling

import (
	"testing"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local)

func makeClient(name string, status entity.ClientStatus, next time.Time) entity.Client {
	return entity.Client{
		ID:              name,
		CompanyName:     name,
		Status:          status,
		NextContactDate: next,
	}
}

func TestClassifyAtrasado(t *testing.T) {
	client := makeClient("TechCorp", entity.StatusClienteAtivo, now.AddDate(0, 0, -1))

	assert.Equal(t, Overdue, Classify(&client, now, DefaultWindowDays))
}

func TestClassifyProximo(t *testing.T) {
	tests := []struct {
		name string
		next time.Time
	}{
		{"exatamente agora", now},
		{"amanhã", now.AddDate(0, 0, 1)},
		{"no limite da janela", now.Add(7 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := makeClient("TechCorp", entity.StatusProspectQuente, tt.next)
			assert.Equal(t, Upcoming, Classify(&client, now, 7))
		})
	}
}

func TestClassifyNormalForaDaJanela(t *testing.T) {
	client := makeClient("TechCorp", entity.StatusClienteAtivo, now.AddDate(0, 0, 20))

	assert.Equal(t, Normal, Classify(&client, now, 7))

	// janela maior alcança a mesma data
	assert.Equal(t, Upcoming, Classify(&client, now, 30))
}

func TestClassifyInativoNuncaUrgente(t *testing.T) {
	// qualquer "now" e qualquer data: inativo é sempre Normal
	dates := []time.Time{
		now.AddDate(0, -6, 0),
		now.AddDate(0, 0, -1),
		now,
		now.AddDate(0, 0, 3),
		now.AddDate(1, 0, 0),
	}

	for _, next := range dates {
		client := makeClient("Desativada Ltda", entity.StatusClienteInativo, next)
		assert.Equal(t, Normal, Classify(&client, now, DefaultWindowDays))
	}
}

func TestStatsIgnoraInativosNosContadores(t *testing.T) {
	clients := []entity.Client{
		makeClient("A", entity.StatusClienteAtivo, now.AddDate(0, 0, -2)),    // overdue
		makeClient("B", entity.StatusProspectQuente, now.AddDate(0, 0, -10)), // overdue
		makeClient("C", entity.StatusProspectMorno, now.AddDate(0, 0, 3)),    // upcoming
		makeClient("D", entity.StatusClienteFiel, now.AddDate(0, 0, 30)),     // normal
		makeClient("E", entity.StatusClienteInativo, now.AddDate(0, 0, -5)),  // inativo: só no total
		makeClient("F", entity.StatusClienteInativo, now.AddDate(0, 0, 2)),   // inativo: só no total
	}

	stats := Stats(clients, now, 7)

	assert.Equal(t, 6, stats.TotalClients)
	assert.Equal(t, 2, stats.OverdueContacts)
	assert.Equal(t, 1, stats.UpcomingContacts)
}

func TestSortInativosPorUltimoDepoisPorData(t *testing.T) {
	clients := []entity.Client{
		makeClient("inativo-cedo", entity.StatusClienteInativo, now.AddDate(0, 0, -30)),
		makeClient("daqui-3-dias", entity.StatusClienteAtivo, now.AddDate(0, 0, 3)),
		makeClient("sem-data", entity.StatusProspectFrio, time.Time{}),
		makeClient("atrasado", entity.StatusProspectQuente, now.AddDate(0, 0, -1)),
	}

	Sort(clients)

	got := []string{clients[0].ID, clients[1].ID, clients[2].ID, clients[3].ID}
	assert.Equal(t, []string{"atrasado", "daqui-3-dias", "sem-data", "inativo-cedo"}, got)
}

func TestSortIdempotente(t *testing.T) {
	clients := []entity.Client{
		makeClient("c", entity.StatusClienteInativo, now),
		makeClient("a", entity.StatusClienteAtivo, now.AddDate(0, 0, 1)),
		makeClient("b", entity.StatusProspectMorno, now.AddDate(0, 0, 5)),
		makeClient("d", entity.StatusProspectFrio, time.Time{}),
	}

	Sort(clients)
	first := make([]entity.Client, len(clients))
	copy(first, clients)

	Sort(clients)
	assert.Equal(t, first, clients)
}

func TestFilterBuscaPorNomeSemCase(t *testing.T) {
	clients := []entity.Client{
		makeClient("TechCorp Solutions", entity.StatusClienteAtivo, now),
		makeClient("Inovação Digital", entity.StatusProspectQuente, now),
	}

	result := Filter(clients, Filters{Search: "techcorp"}, now, DefaultWindowDays)

	assert.Len(t, result, 1)
	assert.Equal(t, "TechCorp Solutions", result[0].CompanyName)
}

func TestFilterStatusExato(t *testing.T) {
	clients := []entity.Client{
		makeClient("A", entity.StatusClienteAtivo, now),
		makeClient("B", entity.StatusClienteFiel, now),
		makeClient("C", entity.StatusClienteAtivo, now),
	}

	result := Filter(clients, Filters{Status: entity.StatusClienteAtivo}, now, DefaultWindowDays)

	assert.Len(t, result, 2)
}

func TestFilterUrgenciaExcluiInativos(t *testing.T) {
	clients := []entity.Client{
		makeClient("atrasado-ativo", entity.StatusClienteAtivo, now.AddDate(0, 0, -1)),
		makeClient("atrasado-inativo", entity.StatusClienteInativo, now.AddDate(0, 0, -1)),
		makeClient("proximo", entity.StatusProspectMorno, now.AddDate(0, 0, 2)),
	}

	overdue := Filter(clients, Filters{Contact: FilterOverdue}, now, 7)
	assert.Len(t, overdue, 1)
	assert.Equal(t, "atrasado-ativo", overdue[0].ID)

	upcoming := Filter(clients, Filters{Contact: FilterUpcoming}, now, 7)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, "proximo", upcoming[0].ID)

	all := Filter(clients, Filters{Contact: FilterAll}, now, 7)
	assert.Len(t, all, 3)
}
