package recall

import "context"

type Repository interface {
	Save(ctx context.Context, r *Recall) error
	Update(ctx context.Context, r *Recall) error
	Delete(ctx context.Context, modelID, recallID uint) error
	// DeleteByModelID removes every recall of a model. Used by the model
	// delete cascade; must run inside the caller's transaction.
	DeleteByModelID(ctx context.Context, modelID uint) (int64, error)
	// ReassignModelID rewrites the model reference of every recall of a
	// model. Used by the model key-update cascade.
	ReassignModelID(ctx context.Context, oldModelID, newModelID uint) error
	FindByKey(ctx context.Context, modelID, recallID uint) (*Recall, error)
	ListByModelID(ctx context.Context, modelID uint) ([]*Recall, int64, error)
	CountByModelID(ctx context.Context, modelID uint) (int64, error)
	Exists(ctx context.Context, modelID, recallID uint) (bool, error)
}
