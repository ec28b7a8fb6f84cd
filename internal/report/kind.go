package report

import (
	"fmt"
	"strings"
)

// Kind identifies one of the comparison reports.
type Kind string

const (
	KindMonthly      Kind = "monthly"
	KindSemester     Kind = "semester"
	KindAnnual       Kind = "annual"
	KindSundays      Kind = "sundays"
	KindRooms        Kind = "rooms"
	KindRoomsMonthly Kind = "rooms-monthly"
)

// Kinds lists every report kind in menu order.
var Kinds = []Kind{KindMonthly, KindSemester, KindAnnual, KindSundays, KindRooms, KindRoomsMonthly}

var kindNames = map[Kind]string{
	KindMonthly:      "Comparativo Mensal",
	KindSemester:     "Comparativo Semestral",
	KindAnnual:       "Comparativo Anual",
	KindSundays:      "Comparativo de Domingos",
	KindRooms:        "Comparativo por Sala",
	KindRoomsMonthly: "Comparativo de Salas por Mês",
}

// DisplayName returns the Portuguese menu label of the kind.
func (k Kind) DisplayName() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return string(k)
}

// Title returns the chart title for one year of this kind.
func (k Kind) Title(year int) string {
	switch k {
	case KindMonthly:
		return fmt.Sprintf("Público Mensal em %d", year)
	case KindSemester:
		return fmt.Sprintf("Comparativo Semestral %d", year)
	case KindAnnual:
		return fmt.Sprintf("Público Total em %d", year)
	case KindSundays:
		return fmt.Sprintf("Público nos Domingos em %d", year)
	case KindRooms:
		return fmt.Sprintf("Distribuição por Sala %d", year)
	case KindRoomsMonthly:
		return fmt.Sprintf("Público por Sala/Mês - %d", year)
	}
	return fmt.Sprintf("Análise %d", year)
}

// ParseKind accepts either the kind key ("rooms-monthly") or its display name.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds {
		if strings.EqualFold(s, string(k)) || strings.EqualFold(s, k.DisplayName()) {
			return k, nil
		}
	}
	keys := make([]string, len(Kinds))
	for i, k := range Kinds {
		keys[i] = string(k)
	}
	return "", fmt.Errorf("unknown report type %q (expected one of %s)", s, strings.Join(keys, ", "))
}
