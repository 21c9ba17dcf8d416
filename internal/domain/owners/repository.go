package owners

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Owner, error)
	Create(ctx context.Context, in CreateInput) (Owner, error)
	Get(ctx context.Context, id int64) (Detail, error)
	Update(ctx context.Context, id int64, p Patch) (Owner, error)
	Delete(ctx context.Context, id int64) error
}
