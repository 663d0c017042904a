// Comando relatorio executa a análise de inatividade de clientes direto no terminal,
// sem subir a API.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
