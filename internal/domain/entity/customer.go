package entity

import "time"

// Customer cliente del directorio comercial. El servicio solo lo consume como
// lectura (resolución de identidad y nombre para las tarifas); el alta y la
// gestión de clientes viven en otro sistema.
type Customer struct {
	ID                 int
	Name               string
	RepresentativeName string
	Tel                string
	InsertedAt         time.Time
	DeleteYn           string
}
