package domain

import "time"

// AnalysisRecord registra os metadados de uma análise executada.
// Os clientes da planilha nunca são persistidos.
type AnalysisRecord struct {
	ID                string    `json:"id"`
	FileName          string    `json:"file_name"`
	FilterType        string    `json:"filter_type"`
	FilterValue       string    `json:"filter_value"`
	FilterDescription string    `json:"filter_description"`
	TotalRows         int       `json:"total_rows"`
	Matched           int       `json:"matched"`
	DurationMs        int64     `json:"duration_ms"`
	CreatedAt         time.Time `json:"created_at"`
}

// AnalysisRequest carrega os parâmetros brutos da análise, usados para o histórico
type AnalysisRequest struct {
	FileName    string
	FilterType  string
	FilterValue string
	Spec        FilterSpec
}
