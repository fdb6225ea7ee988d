package main

import (
	"context"
	"flag"
	"log"
	"time"

	"prodrec-tf/internal/config"
	"prodrec-tf/internal/dataset"
	"prodrec-tf/internal/db"
	"prodrec-tf/internal/models"
	"prodrec-tf/internal/repository"
)

const batchSize = 5000

// Catálogo semilla: los productos del dataset de Electronics para los que
// tenemos nombre e imagen. El resto de ids sirve igual para recomendar,
// la API les pone el fallback "Product <id>".
var seedCatalog = map[string]models.ProductDoc{
	"B006ZW4IVE": {Name: "Samsung 4K 55-inch TV", ImageURL: "https://m.media-amazon.com/images/I/71I3n0N6gKL._AC_SL1500_.jpg"},
	"B000YM2OIK": {Name: "Sony WH-1000XM5 Headphones", ImageURL: "https://m.media-amazon.com/images/I/61r59C4X9iL._AC_SL1500_.jpg"},
	"B001N85NMI": {Name: "AmazonBasics USB Cable", ImageURL: "https://m.media-amazon.com/images/I/613a-a5Vq-L._AC_SL1000_.jpg"},
	"B0002BEQN4": {Name: "Bose SoundLink Speaker", ImageURL: "https://m.media-amazon.com/images/I/6121t6t81DL._AC_SL1500_.jpg"},
	"B003D3NEEU": {Name: "Logitech MX Master 3 Mouse", ImageURL: "https://m.media-amazon.com/images/I/71Y-tL7pTUL._AC_SL1500_.jpg"},
	"B0083B3U3K": {Name: "Anker PowerCore 10000", ImageURL: "https://m.media-amazon.com/images/I/610tq7v-ZPL._AC_SL1500_.jpg"},
	"B008F49T2Y": {Name: "GoPro HERO11 Black", ImageURL: "https://m.media-amazon.com/images/I/61J6Q5R8qAL._AC_SL1500_.jpg"},
	"B003L49M7G": {Name: "Apple AirPods Pro", ImageURL: "https://m.media-amazon.com/images/I/71Wl1V-10eL._AC_SL1500_.jpg"},
}

// Ingesta: CSV crudo → Mongo. Limpia el CSV (filas malformadas afuera),
// inserta las interacciones por lotes y siembra el catálogo de productos.
// Después de esto la API puede arrancar con DATA_SOURCE=mongo.
func main() {
	var (
		file      = flag.String("file", "", "ruta del CSV crudo (user,product,rating,timestamp; sin header)")
		seedOnly  = flag.Bool("seed-only", false, "solo sembrar el catálogo, sin cargar interacciones")
		skipSeeds = flag.Bool("skip-seed", false, "no sembrar el catálogo")
	)
	flag.Parse()

	cfg := config.Load()
	db.InitMongo(cfg)

	ctx := context.Background()
	start := time.Now()

	if !*skipSeeds {
		seedProducts(ctx)
	}
	if *seedOnly {
		log.Printf("[ingest] listo (solo seed) en %s", time.Since(start).Round(time.Millisecond))
		return
	}

	path := *file
	if path == "" {
		path = cfg.DataPath
	}

	interactions, err := dataset.NewCSVSource(path).Load(ctx)
	if err != nil {
		log.Fatalf("[ingest] error cargando CSV: %v", err)
	}
	if len(interactions) == 0 {
		log.Fatalf("[ingest] el CSV no tiene ninguna fila usable")
	}

	repo := repository.NewInteractionRepository()
	inserted := 0
	for i := 0; i < len(interactions); i += batchSize {
		end := i + batchSize
		if end > len(interactions) {
			end = len(interactions)
		}
		if err := repo.InsertBatch(ctx, interactions[i:end]); err != nil {
			log.Fatalf("[ingest] error insertando lote %d-%d: %v", i, end, err)
		}
		inserted += end - i
	}

	total, err := repo.Count(ctx)
	if err != nil {
		log.Printf("[ingest] no se pudo contar la colección: %v", err)
	}

	log.Printf("[ingest] %d interacciones insertadas (colección: %d) en %s",
		inserted, total, time.Since(start).Round(time.Millisecond))
}

func seedProducts(ctx context.Context) {
	repo := repository.NewProductRepository()
	now := time.Now().UTC().Format(time.RFC3339)

	for id, p := range seedCatalog {
		doc := p
		doc.ProductID = id
		doc.CreatedAt = now
		doc.UpdatedAt = now
		if err := repo.Upsert(ctx, &doc); err != nil {
			log.Fatalf("[ingest] error sembrando producto %s: %v", id, err)
		}
	}
	log.Printf("[ingest] catálogo sembrado: %d productos", len(seedCatalog))
}
