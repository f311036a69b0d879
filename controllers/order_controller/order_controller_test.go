package order_controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	product_cache "github.com/Aphia-Commerce/aphia-api/cache"
	"github.com/Aphia-Commerce/aphia-api/controllers/order_controller"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/Aphia-Commerce/aphia-api/services"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ── In-memory fakes behind the repository interfaces ─────────────────────────

type fakeState struct {
	mu            sync.Mutex
	orders        map[uuid.UUID]models.Order
	payments      map[uuid.UUID][]models.Payment
	products      map[uuid.UUID]models.Product
	users         map[uuid.UUID]models.User
	statusQueries int

	// completeOnDelete flips the order to completed just before the delete's
	// conditional guard runs, simulating a delivery landing inside the
	// read-then-delete window.
	completeOnDelete bool
}

func newFakeState() *fakeState {
	return &fakeState{
		orders:   map[uuid.UUID]models.Order{},
		payments: map[uuid.UUID][]models.Payment{},
		products: map[uuid.UUID]models.Product{},
		users:    map[uuid.UUID]models.User{},
	}
}

type fakeOrderRepo struct{ s *fakeState }

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.Must(uuid.NewV7())
	}
	f.s.orders[order.ID] = *order
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (models.Order, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	order, ok := f.s.orders[id]
	if !ok {
		return models.Order{}, repository.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Order, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Order
	for _, o := range f.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByCompleted(_ context.Context, completed bool) ([]models.Order, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.statusQueries++
	var out []models.Order
	for _, o := range f.s.orders {
		if o.Completed == completed {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListAll(_ context.Context) ([]models.Order, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Order
	for _, o := range f.s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) MarkDelivered(_ context.Context, id uuid.UUID, deliveryDate time.Time) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	order, ok := f.s.orders[id]
	if !ok {
		return false, nil
	}
	order.Completed = true
	order.DeliveryDate = &deliveryDate
	f.s.orders[id] = order
	return true, nil
}

func (f *fakeOrderRepo) DeleteWithPayments(_ context.Context, id uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	order, ok := f.s.orders[id]
	if f.s.completeOnDelete {
		order.Completed = true
		f.s.orders[id] = order
	}
	if !ok || order.Completed {
		return repository.ErrConflict
	}
	delete(f.s.payments, id)
	delete(f.s.orders, id)
	return nil
}

type fakeProductRepo struct{ s *fakeState }

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (models.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	product, ok := f.s.products[id]
	if !ok {
		return models.Product{}, repository.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.Product
	for _, p := range f.s.products {
		if p.UserID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeUserRepo struct{ s *fakeState }

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	user, ok := f.s.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

// failingSender always errors, standing in for a broken mail provider.
type failingSender struct{}

func (failingSender) Send(services.Email) error { return io.ErrClosedPipe }

// ── Suite ────────────────────────────────────────────────────────────────────

type orderControllerSuite struct {
	suite.Suite

	state *fakeState
	user  models.User
}

func TestOrderControllerSuite(t *testing.T) {
	suite.Run(t, new(orderControllerSuite))
}

func (s *orderControllerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	product_cache.InvalidateAll()

	s.state = newFakeState()
	s.user = models.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     "ada@example.com",
		FirstName: "Ada",
		Role:      models.RoleUser,
	}
	s.state.users[s.user.ID] = s.user

	s.initControllers(services.NewDispatcher(nil, nil))
}

func (s *orderControllerSuite) initControllers(dispatcher *services.Dispatcher) {
	order_controller.Init(&repository.Repositories{
		Orders:   &fakeOrderRepo{s: s.state},
		Products: &fakeProductRepo{s: s.state},
		Users:    &fakeUserRepo{s: s.state},
	}, dispatcher)
}

// newRouter registers the order routes behind a stub identity middleware.
// uuid.Nil means "no authenticated user".
func (s *orderControllerSuite) newRouter(userID uuid.UUID, role string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("userID", userID.String())
			c.Set("userRole", role)
		}
	})
	orders := r.Group("/orders")
	orders.POST("", order_controller.CreateOrder)
	orders.GET("", order_controller.GetOrders)
	orders.GET("/vendor", order_controller.GetVendorOrders)
	orders.GET("/:orderId", order_controller.GetOrderDetails)
	orders.DELETE("/:orderId", order_controller.DeleteOrder)
	orders.PATCH("/:orderId/deliver", order_controller.MarkDelivered)
	return r
}

func (s *orderControllerSuite) do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func (s *orderControllerSuite) decode(w *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (s *orderControllerSuite) validCreatePayload() map[string]any {
	return map[string]any{
		"street_address": "12 Marina Rd",
		"city":           "Lagos",
		"state":          "Lagos",
		"postal_code":    "100001",
		"phone_number":   "+2348000000000",
		"products": []any{
			map[string]any{"product_id": uuid.NewString(), "quantity": 2, "price": 50.0},
		},
		"amount":   100.0,
		"currency": "NGN",
		"tx_ref":   "tx-123",
	}
}

func (s *orderControllerSuite) seedOrder(owner uuid.UUID, completed bool, items ...models.OrderLineItem) models.Order {
	order := models.Order{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        owner,
		StreetAddress: "12 Marina Rd",
		City:          "Lagos",
		State:         "Lagos",
		PhoneNumber:   "+2348000000000",
		Amount:        100,
		Currency:      "NGN",
		OrderDate:     time.Now(),
		OrderRef:      "ref-" + uuid.NewString()[:8],
		Completed:     completed,
		Products:      items,
	}
	s.state.orders[order.ID] = order
	s.state.payments[order.ID] = []models.Payment{{
		ID:      uuid.Must(uuid.NewV7()),
		OrderID: order.ID,
		Amount:  order.Amount,
	}}
	return order
}

// ── Create ───────────────────────────────────────────────────────────────────

func (s *orderControllerSuite) TestCreateOrder() {
	r := s.newRouter(s.user.ID, models.RoleUser)

	w := s.do(r, http.MethodPost, "/orders", s.validCreatePayload())
	require.Equal(s.T(), http.StatusCreated, w.Code)

	env := s.decode(w)
	require.True(s.T(), env.Success)

	require.Len(s.T(), s.state.orders, 1)
	for _, stored := range s.state.orders {
		s.False(stored.Completed, "new orders must start pending")
		s.Len(stored.OrderRef, 8)
		s.Equal(s.user.ID, stored.UserID)
		s.Len(stored.Products, 1)
	}
}

func (s *orderControllerSuite) TestCreateOrderRefsUniqueAcrossRapidCalls() {
	r := s.newRouter(s.user.ID, models.RoleUser)

	for i := 0; i < 50; i++ {
		w := s.do(r, http.MethodPost, "/orders", s.validCreatePayload())
		require.Equal(s.T(), http.StatusCreated, w.Code)
	}

	refs := map[string]struct{}{}
	for _, o := range s.state.orders {
		refs[o.OrderRef] = struct{}{}
	}
	s.Len(refs, 50, "order refs must not collide")
}

func (s *orderControllerSuite) TestCreateOrderValidation() {
	r := s.newRouter(s.user.ID, models.RoleUser)

	w := s.do(r, http.MethodPost, "/orders", map[string]any{"postal_code": "100001"})
	require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Message map[string]string `json:"message"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
	s.False(body.Success)
	s.Contains(body.Message, "street_address")
	s.Contains(body.Message, "city")
	s.Contains(body.Message, "state")
	s.Contains(body.Message, "phone_number")
	s.Contains(body.Message, "products")
	s.Contains(body.Message, "amount")
	s.Empty(s.state.orders, "nothing may be persisted on validation failure")
}

func (s *orderControllerSuite) TestCreateOrderAcceptsEmptyProductList() {
	// An empty products array satisfies required|array; the API has always
	// accepted it, so the behavior is locked in here.
	r := s.newRouter(s.user.ID, models.RoleUser)

	payload := s.validCreatePayload()
	payload["products"] = []any{}

	w := s.do(r, http.MethodPost, "/orders", payload)
	s.Equal(http.StatusCreated, w.Code)
}

func (s *orderControllerSuite) TestCreateOrderAcceptsPlainDates() {
	// The deliver endpoint takes plain 2006-01-02 dates, so creation must
	// accept the same shape.
	r := s.newRouter(s.user.ID, models.RoleUser)

	payload := s.validCreatePayload()
	payload["order_date"] = "2025-05-20"
	payload["delivery_date"] = "2025-05-28"

	w := s.do(r, http.MethodPost, "/orders", payload)
	require.Equal(s.T(), http.StatusCreated, w.Code)

	for _, stored := range s.state.orders {
		s.Equal("2025-05-20", stored.OrderDate.Format("2006-01-02"))
		require.NotNil(s.T(), stored.DeliveryDate)
		s.Equal("2025-05-28", stored.DeliveryDate.Format("2006-01-02"))
	}
}

func (s *orderControllerSuite) TestCreateOrderRejectsUnparseableDate() {
	r := s.newRouter(s.user.ID, models.RoleUser)

	payload := s.validCreatePayload()
	payload["order_date"] = "yesterday"

	w := s.do(r, http.MethodPost, "/orders", payload)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Empty(s.state.orders)
}

func (s *orderControllerSuite) TestCreateOrderUnauthenticated() {
	r := s.newRouter(uuid.Nil, "")

	w := s.do(r, http.MethodPost, "/orders", s.validCreatePayload())
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Empty(s.state.orders)
}

func (s *orderControllerSuite) TestCreateOrderSurvivesMailFailure() {
	s.initControllers(services.NewDispatcher(failingSender{}, nil))
	r := s.newRouter(s.user.ID, models.RoleUser)

	w := s.do(r, http.MethodPost, "/orders", s.validCreatePayload())
	s.Equal(http.StatusCreated, w.Code, "a mail failure must never fail the order")
	s.Len(s.state.orders, 1)
}

// ── List / Get ───────────────────────────────────────────────────────────────

func (s *orderControllerSuite) TestGetOrdersOwnOnly() {
	mine := s.seedOrder(s.user.ID, false)
	s.seedOrder(uuid.Must(uuid.NewV7()), false) // someone else's

	r := s.newRouter(s.user.ID, models.RoleUser)
	w := s.do(r, http.MethodGet, "/orders", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	env := s.decode(w)
	require.True(s.T(), env.Success)

	var listed []models.Order
	require.NoError(s.T(), json.Unmarshal(env.Message, &listed))
	require.Len(s.T(), listed, 1)
	s.Equal(mine.ID, listed[0].ID)
}

func (s *orderControllerSuite) TestGetOrdersEmptyIsSuccessful() {
	r := s.newRouter(s.user.ID, models.RoleUser)
	w := s.do(r, http.MethodGet, "/orders", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	env := s.decode(w)
	s.True(env.Success)
	s.JSONEq(`[]`, string(env.Message))
}

func (s *orderControllerSuite) TestGetOrderDetailsNotFound() {
	r := s.newRouter(s.user.ID, models.RoleUser)

	w := s.do(r, http.MethodGet, "/orders/"+uuid.NewString(), nil)
	s.Equal(http.StatusNotFound, w.Code)

	// Ids that cannot even parse read the same as unknown ones.
	w = s.do(r, http.MethodGet, "/orders/X", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *orderControllerSuite) TestGetOrderDetailsForbiddenDoesNotLeak() {
	other := s.seedOrder(uuid.Must(uuid.NewV7()), false)

	r := s.newRouter(s.user.ID, models.RoleUser)
	w := s.do(r, http.MethodGet, "/orders/"+other.ID.String(), nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.NotContains(w.Body.String(), other.StreetAddress)
	s.NotContains(w.Body.String(), other.OrderRef)
}

// ── Admin status listing ─────────────────────────────────────────────────────

func (s *orderControllerSuite) TestStatusListingRejectsUnknownStatusBeforeStore() {
	s.seedOrder(s.user.ID, false)

	r := s.newRouter(s.user.ID, models.RoleAdmin)
	w := s.do(r, http.MethodGet, "/orders?status=shipped", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Zero(s.state.statusQueries, "an out-of-domain status must not hit the store")
}

func (s *orderControllerSuite) TestStatusListingRequiresAdmin() {
	r := s.newRouter(s.user.ID, models.RoleUser)
	w := s.do(r, http.MethodGet, "/orders?status=pending", nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *orderControllerSuite) TestStatusListingFilters() {
	pending := s.seedOrder(uuid.Must(uuid.NewV7()), false)
	s.seedOrder(uuid.Must(uuid.NewV7()), true)

	r := s.newRouter(s.user.ID, models.RoleAdmin)
	w := s.do(r, http.MethodGet, "/orders?status=pending", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	env := s.decode(w)
	var listed []models.Order
	require.NoError(s.T(), json.Unmarshal(env.Message, &listed))
	require.Len(s.T(), listed, 1)
	s.Equal(pending.ID, listed[0].ID)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func (s *orderControllerSuite) TestDeleteCompletedOrderConflicts() {
	order := s.seedOrder(s.user.ID, true)

	r := s.newRouter(s.user.ID, models.RoleUser)
	w := s.do(r, http.MethodDelete, "/orders/"+order.ID.String(), nil)

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(s.state.orders, order.ID, "order must survive a refused delete")
	s.Len(s.state.payments[order.ID], 1, "payments must survive a refused delete")
}

func (s *orderControllerSuite) TestDeleteForeignOrderForbidden() {
	order := s.seedOrder(uuid.Must(uuid.NewV7()), false)

	r := s.newRouter(s.user.ID, models.RoleUser)
	w := s.do(r, http.MethodDelete, "/orders/"+order.ID.String(), nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.Contains(s.state.orders, order.ID)
}

func (s *orderControllerSuite) TestDeleteConflictsWhenOrderCompletesMidDelete() {
	// The order reads as pending, but completion lands before the conditional
	// delete fires; the store's guard must surface as a 409 and leave the
	// order and its payments intact.
	order := s.seedOrder(s.user.ID, false)
	s.state.completeOnDelete = true

	r := s.newRouter(s.user.ID, models.RoleUser)
	w := s.do(r, http.MethodDelete, "/orders/"+order.ID.String(), nil)

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(s.state.orders, order.ID, "order must survive a refused delete")
	s.Len(s.state.payments[order.ID], 1, "payments must survive a refused delete")
}

func (s *orderControllerSuite) TestDeletePendingOrderCascades() {
	order := s.seedOrder(s.user.ID, false)

	r := s.newRouter(s.user.ID, models.RoleUser)
	w := s.do(r, http.MethodDelete, "/orders/"+order.ID.String(), nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	s.NotContains(s.state.orders, order.ID)
	s.Empty(s.state.payments[order.ID])

	// A follow-up fetch must now read as not-found.
	w = s.do(r, http.MethodGet, "/orders/"+order.ID.String(), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

// ── Mark delivered ───────────────────────────────────────────────────────────

func (s *orderControllerSuite) TestMarkDeliveredValidation() {
	order := s.seedOrder(s.user.ID, false)
	r := s.newRouter(s.user.ID, models.RoleAdmin)

	w := s.do(r, http.MethodPatch, "/orders/"+order.ID.String()+"/deliver", map[string]any{})
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	// Completion is one-way: false is out of domain.
	w = s.do(r, http.MethodPatch, "/orders/"+order.ID.String()+"/deliver", map[string]any{
		"delivery_date": "2025-06-01",
		"completed":     false,
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.False(s.state.orders[order.ID].Completed)
}

func (s *orderControllerSuite) TestMarkDeliveredUnknownOrder() {
	r := s.newRouter(s.user.ID, models.RoleAdmin)
	w := s.do(r, http.MethodPatch, "/orders/"+uuid.NewString()+"/deliver", map[string]any{
		"delivery_date": "2025-06-01",
		"completed":     true,
	})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *orderControllerSuite) TestMarkDelivered() {
	order := s.seedOrder(s.user.ID, false)
	r := s.newRouter(s.user.ID, models.RoleAdmin)

	w := s.do(r, http.MethodPatch, "/orders/"+order.ID.String()+"/deliver", map[string]any{
		"delivery_date": "2025-06-01",
		"completed":     true,
	})
	require.Equal(s.T(), http.StatusOK, w.Code)

	updated := s.state.orders[order.ID]
	s.True(updated.Completed)
	require.NotNil(s.T(), updated.DeliveryDate)
	s.Equal("2025-06-01", updated.DeliveryDate.Format("2006-01-02"))
}

// ── Vendor aggregation ───────────────────────────────────────────────────────

func (s *orderControllerSuite) seedProduct(owner uuid.UUID, name string) models.Product {
	p := models.Product{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       name,
		Price:      25,
		UserID:     owner,
		CategoryID: uuid.Must(uuid.NewV7()),
		Images:     []string{"https://img.example.com/" + name + ".jpg"},
	}
	s.state.products[p.ID] = p
	return p
}

func (s *orderControllerSuite) TestVendorOrdersEmptyStore() {
	vendor := uuid.Must(uuid.NewV7())
	r := s.newRouter(vendor, models.RoleVendor)

	w := s.do(r, http.MethodGet, "/orders/vendor", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "No order present")
}

func (s *orderControllerSuite) TestVendorOrdersNoMatches() {
	vendor := uuid.Must(uuid.NewV7())
	foreign := s.seedProduct(uuid.Must(uuid.NewV7()), "socks")
	s.seedOrder(s.user.ID, false, models.OrderLineItem{ProductID: foreign.ID, Quantity: 1, Price: 25})

	r := s.newRouter(vendor, models.RoleVendor)
	w := s.do(r, http.MethodGet, "/orders/vendor", nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "no order for your products")
}

func (s *orderControllerSuite) TestVendorOrdersMatchingSubset() {
	vendor := uuid.Must(uuid.NewV7())
	mineA := s.seedProduct(vendor, "scarf")
	mineB := s.seedProduct(vendor, "hat")
	foreign := s.seedProduct(uuid.Must(uuid.NewV7()), "socks")

	// 3 line items, 2 of them the vendor's
	mixed := s.seedOrder(s.user.ID, false,
		models.OrderLineItem{ProductID: mineA.ID, Quantity: 2, Price: 25},
		models.OrderLineItem{ProductID: mineB.ID, Quantity: 1, Price: 40},
		models.OrderLineItem{ProductID: foreign.ID, Quantity: 5, Price: 10},
	)
	// order with none of the vendor's items must not appear
	s.seedOrder(s.user.ID, false,
		models.OrderLineItem{ProductID: foreign.ID, Quantity: 1, Price: 10},
	)

	r := s.newRouter(vendor, models.RoleVendor)
	w := s.do(r, http.MethodGet, "/orders/vendor", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	env := s.decode(w)
	var views []models.VendorOrderView
	require.NoError(s.T(), json.Unmarshal(env.Message, &views))
	require.Len(s.T(), views, 1, "orders without the vendor's items must be excluded")

	view := views[0]
	s.Equal(mixed.ID, view.OrderID)
	s.False(view.Completed)

	want := []models.VendorOrderProduct{
		{ProductName: "scarf", Quantity: 2, Price: 25, CategoryID: mineA.CategoryID, Image: mineA.Images[0]},
		{ProductName: "hat", Quantity: 1, Price: 40, CategoryID: mineB.CategoryID, Image: mineB.Images[0]},
	}
	if diff := cmp.Diff(want, view.Products); diff != "" {
		s.T().Errorf("vendor product summaries mismatch (-want +got):\n%s", diff)
	}
}
