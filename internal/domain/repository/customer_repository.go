package repository

import "github.com/jhoicas/Comercial-api/internal/domain/entity"

// CustomerRepository puerto de solo lectura sobre el directorio de clientes.
// La gestión de clientes es de otro sistema; aquí solo se resuelven
// identidades y nombres.
type CustomerRepository interface {
	GetByID(id int) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
