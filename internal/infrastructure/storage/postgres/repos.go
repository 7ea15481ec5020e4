package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"storeadmin/internal/core/id"
	"storeadmin/internal/domain/auth"
	"storeadmin/internal/domain/catalogs/customer"
	"storeadmin/internal/domain/catalogs/product"
	"storeadmin/internal/domain/documents/delivery"
	"storeadmin/internal/domain/documents/order"
	"storeadmin/internal/domain/documents/payout"
	"storeadmin/internal/domain/store"
)

var (
	_ store.Repository    = (*StoreRepo)(nil)
	_ auth.UserRepository = (*UserRepo)(nil)
	_ product.Repository  = (*Repo[*product.Product])(nil)
	_ customer.Repository = (*Repo[*customer.Customer])(nil)
	_ order.Repository    = (*Repo[*order.Order])(nil)
	_ delivery.Repository = (*Repo[*delivery.Delivery])(nil)
	_ payout.Repository   = (*Repo[*payout.Payout])(nil)
)

func NewProductRepo(db Querier) *Repo[*product.Product] {
	return NewRepo(db, "products", "product", func() *product.Product { return new(product.Product) })
}

func NewCustomerRepo(db Querier) *Repo[*customer.Customer] {
	return NewRepo(db, "customers", "customer", func() *customer.Customer { return new(customer.Customer) })
}

func NewOrderRepo(db Querier) *Repo[*order.Order] {
	return NewRepo(db, "orders", "order", func() *order.Order { return new(order.Order) })
}

func NewDeliveryRepo(db Querier) *Repo[*delivery.Delivery] {
	return NewRepo(db, "deliveries", "delivery", func() *delivery.Delivery { return new(delivery.Delivery) })
}

func NewPayoutRepo(db Querier) *Repo[*payout.Payout] {
	return NewRepo(db, "payouts", "payout", func() *payout.Payout { return new(payout.Payout) })
}

// StoreRepo stores shops.
type StoreRepo struct {
	*Repo[*store.Store]
}

func NewStoreRepo(db Querier) *StoreRepo {
	return &StoreRepo{Repo: NewRepo(db, "stores", "store", func() *store.Store { return new(store.Store) })}
}

func (r *StoreRepo) ListByOwner(ctx context.Context, ownerID id.ID) ([]*store.Store, error) {
	ctx, span := r.startSpan(ctx, "list_by_owner")
	defer span.End()

	return r.list(ctx, sq.Eq{"owner_id": ownerID})
}

// UserRepo stores console users. Users are not store-scoped.
type UserRepo struct {
	*Repo[*auth.User]
}

func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{Repo: NewRepo(db, "users", "user", func() *auth.User { return new(auth.User) })}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	ctx, span := r.startSpan(ctx, "get_by_email")
	defer span.End()

	q := r.selectQuery().
		Where(sq.Eq{"email": email}).
		Limit(1)
	return r.getOne(ctx, q, email)
}
