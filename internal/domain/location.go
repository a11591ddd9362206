package domain

// Location representa um estacionamento (site) administrado pela plataforma.
// O campo Site é o nome de exibição usado como chave nas respostas da API.
type Location struct {
	ID     int    `json:"id"`
	Site   string `json:"site"`
	Active bool   `json:"active"`
}

// LocationIDs extrai os IDs de uma lista de localizações
func LocationIDs(locations []*Location) []int {
	ids := make([]int, 0, len(locations))
	for _, location := range locations {
		ids = append(ids, location.ID)
	}
	return ids
}
