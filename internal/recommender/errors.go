package recommender

import (
	"errors"
	"fmt"
)

var (
	// ErrModelNotReady: se pidió recomendar antes de un Build exitoso.
	ErrModelNotReady = errors.New("modelo no construido todavía")

	// ErrUnknownUser: el userId no tiene columna en la matriz de ratings.
	// Es un caso esperado (usuario frío), el handler lo convierte en 404.
	ErrUnknownUser = errors.New("usuario no está en el modelo")

	// ErrEmptyDataset: no quedó ninguna interacción usable después del
	// muestreo + filtrado. Es fatal para el arranque del servidor.
	ErrEmptyDataset = errors.New("dataset vacío después del filtrado")
)

// MatrixTooLargeError: productos × usuarios excede el límite de celdas
// configurado. Ajustar SAMPLE_SIZE o los umbrales de filtrado.
type MatrixTooLargeError struct {
	Products int
	Users    int
	MaxCells int
}

func (e *MatrixTooLargeError) Error() string {
	return fmt.Sprintf("matriz %dx%d (%d celdas) excede el máximo de %d",
		e.Products, e.Users, e.Products*e.Users, e.MaxCells)
}
