package carmodel

import "context"

// Filter narrows model listings.
type Filter struct {
	MakerID *uint
	Name    *string
}

type Repository interface {
	Save(ctx context.Context, m *CarModel) error
	Update(ctx context.Context, m *CarModel) error
	// UpdateID rewrites a model's primary key. Callers are responsible for
	// cascading the change to dependent recalls in the same transaction.
	UpdateID(ctx context.Context, oldID, newID uint) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*CarModel, error)
	List(ctx context.Context, filter Filter) ([]*CarModel, int64, error)
	CountByMakerID(ctx context.Context, makerID uint) (int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
