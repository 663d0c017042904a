// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strconv"
	"strings"
	"time"
)

// CellKind identifica o tipo de valor lido de uma célula da planilha
type CellKind int

const (
	CellAbsent CellKind = iota
	CellText
	CellNumber
	CellTimestamp
)

// Cell é o valor de uma célula já classificado na borda de leitura.
// Nenhuma lógica depois da leitura trabalha com valores não tipados.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
}

// RawRow é uma linha da planilha como foi lida, antes da localização do cabeçalho
type RawRow []Cell

func AbsentCell() Cell {
	return Cell{Kind: CellAbsent}
}

func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

func TimestampCell(t time.Time) Cell {
	return Cell{Kind: CellTimestamp, Time: t}
}

// IsBlank indica se a célula não tem conteúdo útil
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case CellAbsent:
		return true
	case CellText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return false
	}
}

// String devolve a representação textual da célula
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellTimestamp:
		return c.Time.Format("02/01/2006")
	default:
		return ""
	}
}

// Cell devolve a célula na posição idx, ou uma célula ausente se a linha for mais curta
func (r RawRow) Cell(idx int) Cell {
	if idx < 0 || idx >= len(r) {
		return AbsentCell()
	}
	return r[idx]
}
