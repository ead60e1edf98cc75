package entity

// AISuggestion é um value object transiente: sai do motor de sugestão e,
// se o usuário aceitar, vira apenas um update de status. Nunca é persistida.
type AISuggestion struct {
	SuggestedStatus ClientStatus `json:"suggested_status"`
	Reason          string       `json:"reason"`
}

// ClientStats alimenta os cards do dashboard. Clientes inativos contam no
// total, mas nunca em atrasados/próximos.
type ClientStats struct {
	TotalClients     int `json:"total_clients"`
	OverdueContacts  int `json:"overdue_contacts"`
	UpcomingContacts int `json:"upcoming_contacts"`
}
