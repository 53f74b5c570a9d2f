package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, compartidos por los tests del paquete.

type fakeStoreRepo struct {
	stores  map[string]*entity.Store
	deleted []string
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	r := &fakeStoreRepo{stores: map[string]*entity.Store{}}
	for _, s := range stores {
		r.stores[s.ID] = s
	}
	return r
}

func (r *fakeStoreRepo) Create(s *entity.Store) error { r.stores[s.ID] = s; return nil }
func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.stores[id], nil
}
func (r *fakeStoreRepo) List() ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeStoreRepo) ListByOwner(owner string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.stores {
		if s.OwnerID == owner {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeStoreRepo) ListByWorker(worker string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.stores {
		for _, w := range s.Workers {
			if w.SubjectID == worker {
				out = append(out, s)
			}
		}
	}
	return out, nil
}
func (r *fakeStoreRepo) ListNearby(float64, float64, float64) ([]*entity.Store, error) {
	return r.List()
}
func (r *fakeStoreRepo) Update(s *entity.Store) error { r.stores[s.ID] = s; return nil }
func (r *fakeStoreRepo) Delete(id string) error {
	delete(r.stores, id)
	r.deleted = append(r.deleted, id)
	return nil
}
func (r *fakeStoreRepo) AddWorker(storeID, worker string) error {
	s := r.stores[storeID]
	s.Workers = append(s.Workers, entity.User{SubjectID: worker})
	return nil
}
func (r *fakeStoreRepo) RemoveWorker(storeID, worker string) error {
	s := r.stores[storeID]
	out := s.Workers[:0]
	for _, w := range s.Workers {
		if w.SubjectID != worker {
			out = append(out, w)
		}
	}
	s.Workers = out
	return nil
}
func (r *fakeStoreRepo) ListWorkers(storeID string) ([]entity.User, error) {
	return r.stores[storeID].Workers, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.SubjectID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.SubjectID] = u; return nil }
func (r *fakeUserRepo) GetBySubject(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product // key: storeID + "/" + productID
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.StoreID+"/"+p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.StoreID+"/"+p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByStoreAndID(storeID, productID string) (*entity.Product, error) {
	return r.products[storeID+"/"+productID], nil
}
func (r *fakeProductRepo) ListByStore(storeID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for key, p := range r.products {
		if strings.HasPrefix(key, storeID+"/") {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.StoreID+"/"+p.ID] = p
	return nil
}
func (r *fakeProductRepo) Delete(storeID, productID string) error {
	delete(r.products, storeID+"/"+productID)
	return nil
}

type fakeAdjustmentRepo struct {
	adjustments []*entity.StockAdjustment
}

func (r *fakeAdjustmentRepo) Create(a *entity.StockAdjustment) error {
	r.adjustments = append(r.adjustments, a)
	return nil
}
func (r *fakeAdjustmentRepo) ListByStore(storeID string) ([]*entity.StockAdjustment, error) {
	var out []*entity.StockAdjustment
	for _, a := range r.adjustments {
		if a.StoreID == storeID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAdjustmentRepo) ListByProduct(storeID, productID string) ([]*entity.StockAdjustment, error) {
	var out []*entity.StockAdjustment
	for _, a := range r.adjustments {
		if a.StoreID == storeID && a.ProductID == productID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo(sales ...*entity.Sale) *fakeSaleRepo {
	r := &fakeSaleRepo{sales: map[string]*entity.Sale{}}
	for _, s := range sales {
		r.sales[s.ID] = s
	}
	return r
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) GetByStoreAndID(storeID, saleID string) (*entity.Sale, error) {
	s := r.sales[saleID]
	if s == nil || s.StoreID != storeID {
		return nil, nil
	}
	return s, nil
}
func (r *fakeSaleRepo) ListByStore(storeID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.StoreID == storeID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) Delete(storeID, saleID string) error {
	delete(r.sales, saleID)
	return nil
}
func (r *fakeSaleRepo) SumByStoreAndRange(storeID string, from, to time.Time) (decimal.Decimal, int, error) {
	total := decimal.Zero
	count := 0
	for _, s := range r.sales {
		if s.StoreID == storeID && !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			total = total.Add(s.TotalAmount)
			count++
		}
	}
	return total, count, nil
}

type fakeCartRepo struct {
	carts []*entity.Cart
}

func (r *fakeCartRepo) Create(c *entity.Cart) error { r.carts = append(r.carts, c); return nil }
func (r *fakeCartRepo) ListByStore(storeID string) ([]*entity.Cart, error) {
	var out []*entity.Cart
	for _, c := range r.carts {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeCartRepo) ListBySeller(seller string) ([]*entity.Cart, error) {
	var out []*entity.Cart
	for _, c := range r.carts {
		if c.SellerID == seller {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeCartRepo) SearchByName(name string) ([]*entity.Cart, error) {
	var out []*entity.Cart
	for _, c := range r.carts {
		if strings.Contains(strings.ToLower(c.CartName), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta los callbacks directamente sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	products    *fakeProductRepo
	adjustments *fakeAdjustmentRepo
	carts       *fakeCartRepo
}

func (r *fakeTxRunner) RunStock(_ context.Context, fn func(
	products repository.ProductRepository,
	adjustments repository.StockAdjustmentRepository,
) error) error {
	return fn(r.products, r.adjustments)
}

func (r *fakeTxRunner) RunCart(_ context.Context, fn func(
	carts repository.CartRepository,
	products repository.ProductRepository,
) error) error {
	return fn(r.carts, r.products)
}
