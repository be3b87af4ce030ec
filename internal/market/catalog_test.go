package market

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"schoolhub/internal/api"
	"schoolhub/internal/session"
)

// fakeBackend records calls and serves canned responses.
type fakeBackend struct {
	categories    []api.MarketCategory
	products      []api.MarketProduct
	deleteStatus  string
	failTransport bool

	productCalls  int
	deleteCalls   int
	createCalls   int
	lastCreated   api.NewProduct
	createStatus  string
	createMessage string
}

func ok[T any](data T) api.Envelope[T] {
	return api.Envelope[T]{Status: api.StatusSuccess, Data: &data}
}

func (f *fakeBackend) MarketCategories(ctx context.Context) (api.Envelope[[]api.MarketCategory], error) {
	if f.failTransport {
		return api.Envelope[[]api.MarketCategory]{}, errors.New("connection refused")
	}
	return ok(f.categories), nil
}

func (f *fakeBackend) MarketProducts(ctx context.Context, categoryID *int) (api.Envelope[[]api.MarketProduct], error) {
	f.productCalls++
	if f.failTransport {
		return api.Envelope[[]api.MarketProduct]{}, errors.New("connection refused")
	}
	return ok(f.products), nil
}

func (f *fakeBackend) MarketProductDetail(ctx context.Context, productID int) (api.Envelope[api.MarketProduct], error) {
	for _, p := range f.products {
		if p.ID == productID {
			return ok(p), nil
		}
	}
	return api.Envelope[api.MarketProduct]{Status: "not_found"}, nil
}

func (f *fakeBackend) DeleteProduct(ctx context.Context, productID int) (api.Envelope[api.MarketProduct], error) {
	f.deleteCalls++
	status := f.deleteStatus
	if status == "" {
		status = api.StatusSuccess
	}
	return api.Envelope[api.MarketProduct]{Status: status}, nil
}

func (f *fakeBackend) CreateProduct(ctx context.Context, p api.NewProduct) (api.Envelope[string], error) {
	f.createCalls++
	f.lastCreated = p
	status := f.createStatus
	if status == "" {
		status = api.StatusSuccess
	}
	return api.Envelope[string]{Status: status, Message: f.createMessage}, nil
}

func adminSession() session.Session {
	return session.Session{UserID: 5, Name: "Ann", Role: session.RoleAdmin}
}

func studentSession() session.Session {
	return session.Session{UserID: 6, Name: "Bea", Role: session.RoleStudent}
}

func TestProductListLoadReplaces(t *testing.T) {
	backend := &fakeBackend{products: sampleProducts()}
	list := NewProductList(backend, studentSession(), 1, nil)
	list.Load(context.Background())
	if got := len(list.Visible()); got != 4 {
		t.Fatalf("expected 4 products, got %d", got)
	}
}

func TestProductListLoadFailureKeepsList(t *testing.T) {
	backend := &fakeBackend{products: sampleProducts()}
	list := NewProductList(backend, studentSession(), 1, nil)
	list.Load(context.Background())
	backend.failTransport = true
	list.Load(context.Background())
	if got := len(list.Visible()); got != 4 {
		t.Fatalf("failed reload must keep the old list, got %d items", got)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	backend := &fakeBackend{products: []api.MarketProduct{
		{ID: 3, Title: "a"}, {ID: 7, Title: "b"}, {ID: 9, Title: "c"}, {ID: 12, Title: "d"},
	}}
	list := NewProductList(backend, adminSession(), 1, nil)
	list.Load(context.Background())
	if err := list.Delete(context.Background(), 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got := ids(list.Visible())
	if want := []int{3, 9, 12}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDeleteRefusedLeavesList(t *testing.T) {
	backend := &fakeBackend{products: sampleProducts(), deleteStatus: "error"}
	list := NewProductList(backend, adminSession(), 1, nil)
	list.Load(context.Background())
	if err := list.Delete(context.Background(), 1); err != nil {
		t.Fatalf("refusal is not a transport error: %v", err)
	}
	if got := len(list.Visible()); got != 4 {
		t.Fatalf("refused delete must leave the list, got %d items", got)
	}
}

func TestDeleteRequiresAdmin(t *testing.T) {
	backend := &fakeBackend{products: sampleProducts()}
	list := NewProductList(backend, studentSession(), 1, nil)
	list.Load(context.Background())
	if err := list.Delete(context.Background(), 1); !errors.Is(err, ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
	if backend.deleteCalls != 0 {
		t.Fatalf("no request may be sent without the capability")
	}
}

func TestServerTrustedForCategoryScoping(t *testing.T) {
	other := 99
	backend := &fakeBackend{products: []api.MarketProduct{
		{ID: 1, Title: "a", CategoryID: nil},
		{ID: 2, Title: "b", CategoryID: &other},
	}}
	list := NewProductList(backend, studentSession(), 1, nil)
	list.Load(context.Background())
	// Whatever the server returned for categoryId=1 is shown as-is
	if got := len(list.Visible()); got != 2 {
		t.Fatalf("client must not re-filter by category, got %d items", got)
	}
}

func TestClosedListDropsCompletions(t *testing.T) {
	backend := &fakeBackend{products: sampleProducts()}
	list := NewProductList(backend, studentSession(), 1, nil)
	list.Close()
	list.Load(context.Background())
	if got := len(list.Visible()); got != 0 {
		t.Fatalf("closed view must drop results, got %d items", got)
	}
}

func TestCategoriesLoad(t *testing.T) {
	backend := &fakeBackend{categories: []api.MarketCategory{{ID: 1, Name: "Stationery"}}}
	vm := NewCategories(backend, nil)
	vm.Load(context.Background())
	if len(vm.Items()) != 1 || vm.Items()[0].Name != "Stationery" {
		t.Fatalf("got %v", vm.Items())
	}
}

func TestCategoriesFailureLeavesEmpty(t *testing.T) {
	backend := &fakeBackend{failTransport: true}
	vm := NewCategories(backend, nil)
	vm.Load(context.Background())
	if len(vm.Items()) != 0 {
		t.Fatalf("failed fetch must leave the grid empty")
	}
}
