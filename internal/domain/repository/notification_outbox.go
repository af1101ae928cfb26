package repository

import "github.com/jhoicas/InventoryPro-api/internal/domain/entity"

// NotificationOutbox buzón de notificaciones propiedad del colaborador. El
// flujo de traslados solo emite; la lectura y el descarte son del dueño.
type NotificationOutbox interface {
	Emit(n *entity.Notification) error
	ListByWarehouse(warehouse string) ([]*entity.Notification, error)
}
