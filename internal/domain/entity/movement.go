package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN       = "IN"       // entrada (primer abastecimiento)
	MovementTypeOUT      = "OUT"      // salida
	MovementTypeTRANSFER = "TRANSFER" // traslado entre tiendas
)

// ValidMovementType indica si el tipo es uno de los soportados.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT || t == MovementTypeTRANSFER
}

// Movement representa un registro inmutable de la bitácora de stock: una vez
// persistido no se actualiza ni se borra. Para tipo IN, SourceStoreID y
// TargetStoreID son la misma tienda (stock que entra sin origen previo).
// Quantity es siempre > 0; el signo lo da el tipo y la tienda.
type Movement struct {
	ID            string
	ProductID     string
	SourceStoreID string
	TargetStoreID string
	Quantity      int64
	Timestamp     time.Time
	Type          string
}
