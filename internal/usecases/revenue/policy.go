package revenue

import "time"

// MemberDisclosed decide se a receita de membros do mês-calendário que contém
// anchor já pode ser divulgada no instante now. O corte é o dia 6 às 00:00 do
// mês seguinte ao mês de anchor; a desigualdade é meio-aberta, então o próprio
// instante de corte já divulga. Dezembro vira janeiro do ano seguinte.
//
// Função pura: todos os endpoints de agregação compartilham esta regra e ela
// é reavaliada a cada requisição, nunca cacheada.
func MemberDisclosed(anchor, now time.Time) bool {
	year := anchor.Year()
	month := anchor.Month() + 1
	if anchor.Month() == time.December {
		year++
		month = time.January
	}

	cutoff := time.Date(year, month, 6, 0, 0, 0, 0, anchor.Location())

	return !now.Before(cutoff)
}
