package main

import (
	"context"
	"log"
	"time"

	"github.com/vfg2006/customer-inactivity-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-inactivity-api/internal/config"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar no banco: %v", err)
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		log.Fatalf("ERRO ao criar schema: %v", err)
	}

	log.Printf("Migração concluída em %v", time.Since(startTime))
}
