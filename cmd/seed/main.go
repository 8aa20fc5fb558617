package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/kmulatu/ezana-academy/config"
	"github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/internal/domain/entity"
	"github.com/kmulatu/ezana-academy/internal/domain/storage"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	upsert := func(key string, value any) {
		b, err := json.Marshal(value)
		if err != nil {
			log.Fatalf("marshal %s: %v", key, err)
		}
		if _, err := db.Exec(`
			INSERT INTO kv_store (key, value, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		`, key, b); err != nil {
			log.Fatalf("seed %s: %v", key, err)
		}
		fmt.Printf("seeded %s\n", key)
	}

	upsert(storage.KeySettings, entity.DefaultSettings())
	upsert(storage.KeyUsers, application.SeedUsers())
	upsert(storage.KeyCourses, application.SeedCourses())

	// Index the catalog for search so queries work before the first write.
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Printf("elasticsearch unavailable, skipping index: %v", err)
		return
	}
	ctx := context.Background()
	for _, course := range application.SeedCourses() {
		b, _ := json.Marshal(course)
		res, err := es.Index(cfg.ESCoursesIndex, bytes.NewReader(b), es.Index.WithDocumentID(course.ID), es.Index.WithContext(ctx))
		if err != nil {
			log.Printf("index %s: %v", course.ID, err)
			continue
		}
		_ = res.Body.Close()
		fmt.Printf("indexed course %s\n", course.ID)
	}
}
