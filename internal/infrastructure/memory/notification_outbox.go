package memory

import (
	"sync"

	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
)

// NotificationOutbox buzón de notificaciones en memoria, en orden de emisión.
type NotificationOutbox struct {
	mu            sync.RWMutex
	notifications []*entity.Notification
}

// NewNotificationOutbox construye el buzón vacío.
func NewNotificationOutbox() *NotificationOutbox {
	return &NotificationOutbox{}
}

var _ repository.NotificationOutbox = (*NotificationOutbox)(nil)

// Emit agrega una notificación al buzón.
func (o *NotificationOutbox) Emit(n *entity.Notification) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	copied := *n
	o.notifications = append(o.notifications, &copied)
	return nil
}

// ListByWarehouse devuelve las notificaciones dirigidas a la bodega indicada.
func (o *NotificationOutbox) ListByWarehouse(warehouse string) ([]*entity.Notification, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var out []*entity.Notification
	for _, n := range o.notifications {
		if n.Warehouse == warehouse {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out, nil
}
