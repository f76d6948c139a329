package manufacturer

import "context"

// Filter narrows manufacturer listings.
type Filter struct {
	Region *string
	Name   *string
}

type Repository interface {
	Save(ctx context.Context, m *Manufacturer) error
	Update(ctx context.Context, m *Manufacturer) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Manufacturer, error)
	List(ctx context.Context, filter Filter) ([]*Manufacturer, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
