package ledger

import (
	"strings"

	"github.com/schollz/closestmatch"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
)

// LocateHeader procura, nas primeiras limit linhas, a primeira linha que contém as colunas
// de código e nome fantasia. Retorna false quando nenhuma linha corresponde; o chamador
// decide o que fazer nesse caso.
func LocateHeader(rows []domain.RawRow, schema Schema, limit int) (int, bool) {
	if limit <= 0 {
		limit = DefaultHeaderSearchLimit
	}

	n := schema.normalized()
	for i := 0; i < len(rows) && i < limit; i++ {
		names := make(map[string]bool, len(rows[i]))
		for _, cell := range rows[i] {
			names[NormalizeHeader(cell.String())] = true
		}

		if names[n.Code] && names[n.Name] {
			return i, true
		}
	}

	return 0, false
}

// SuggestHeaders sugere, para cada coluna obrigatória não encontrada, o texto mais parecido
// presente nas primeiras linhas. Usado apenas para diagnóstico quando o cabeçalho não é localizado.
func SuggestHeaders(rows []domain.RawRow, schema Schema, limit int) map[string]string {
	if limit <= 0 {
		limit = DefaultHeaderSearchLimit
	}

	n := schema.normalized()
	seen := make(map[string]bool)
	// closestmatch compara em minúsculas; o mapa devolve o nome normalizado do candidato
	byLower := make(map[string]string)
	candidates := make([]string, 0)
	for i := 0; i < len(rows) && i < limit; i++ {
		for _, cell := range rows[i] {
			if cell.Kind != domain.CellText {
				continue
			}
			name := NormalizeHeader(cell.Text)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			lower := strings.ToLower(name)
			byLower[lower] = name
			candidates = append(candidates, lower)
		}
	}

	suggestions := make(map[string]string)
	if len(candidates) == 0 {
		return suggestions
	}

	cm := closestmatch.New(candidates, []int{2, 3})
	for _, required := range []string{n.Code, n.Name} {
		if seen[required] {
			continue
		}
		if match, ok := byLower[cm.Closest(strings.ToLower(required))]; ok {
			suggestions[required] = match
		}
	}

	return suggestions
}
