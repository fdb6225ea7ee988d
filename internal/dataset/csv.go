package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"prodrec-tf/internal/models"
)

// CSVSource lee el CSV crudo de ratings de Amazon: sin header, cuatro
// columnas en este orden: user_id, product_id, rating, timestamp (epoch).
// Las filas malformadas (columnas de menos, rating o timestamp no
// numérico, ids vacíos) se descartan y se cuentan, no tumban la carga.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Load(ctx context.Context) ([]models.Interaction, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("abriendo dataset %s: %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1 // validamos a mano para poder contar descartes

	var out []models.Interaction
	dropped := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo %s: %w", s.Path, err)
		}

		it, ok := parseRecord(rec)
		if !ok {
			dropped++
			continue
		}
		out = append(out, it)
	}

	if dropped > 0 {
		log.Printf("[dataset] %s: %d filas descartadas por malformadas\n", s.Path, dropped)
	}
	log.Printf("[dataset] %s: %d interacciones cargadas\n", s.Path, len(out))

	return out, nil
}

func parseRecord(rec []string) (models.Interaction, bool) {
	if len(rec) < 4 {
		return models.Interaction{}, false
	}

	userID, productID := rec[0], rec[1]
	if userID == "" || productID == "" {
		return models.Interaction{}, false
	}

	rating, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return models.Interaction{}, false
	}

	ts, err := strconv.ParseInt(rec[3], 10, 64)
	if err != nil {
		return models.Interaction{}, false
	}

	return models.Interaction{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Timestamp: ts,
	}, true
}
