package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	catalogapp "github.com/alshbh/storefront/internal/application/catalog"
	identityapp "github.com/alshbh/storefront/internal/application/identity"
	marketingapp "github.com/alshbh/storefront/internal/application/marketing"
	shippingapp "github.com/alshbh/storefront/internal/application/shipping"
	shoppingapp "github.com/alshbh/storefront/internal/application/shopping"
	"github.com/alshbh/storefront/internal/application/storefront"
	"github.com/alshbh/storefront/internal/application/trade"
	"github.com/alshbh/storefront/internal/domain/shopping"
	"github.com/alshbh/storefront/internal/infrastructure/auth"
	"github.com/alshbh/storefront/internal/infrastructure/cache"
	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/alshbh/storefront/internal/infrastructure/persistence"
	"github.com/alshbh/storefront/internal/infrastructure/persistence/models"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/alshbh/storefront/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSessionID = "0b6cf3e4-5d2f-4a4c-9d4b-1c2f3e4a5b6c"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))
}

// testEnv wires real services over SQLite and in-memory session stores
type testEnv struct {
	engine *gin.Engine

	products     *catalogapp.ProductService
	categories   *catalogapp.CategoryService
	attributes   *catalogapp.AttributeService
	governorates *shippingapp.GovernorateService
	ads          *marketingapp.AdvertisementService
	cart         *shoppingapp.CartService
	favorites    *shoppingapp.FavoritesService
	preferences  *shoppingapp.PreferenceService
	checkout     *trade.CheckoutService
	orders       *trade.OrderService
	home         *storefront.HomeService
	auth         *identityapp.AuthService
	settings     *identityapp.SettingService

	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	productRepo := persistence.NewGormProductRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	colorRepo := persistence.NewGormColorRepository(db)
	sizeRepo := persistence.NewGormSizeRepository(db)
	governorateRepo := persistence.NewGormGovernorateRepository(db)
	adRepo := persistence.NewGormAdvertisementRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	settingRepo := persistence.NewGormSettingRepository(db)

	cartStore := cache.NewMemorySessionStore[shopping.Cart](time.Hour)
	favoritesStore := cache.NewMemorySessionStore[shopping.Favorites](time.Hour)
	preferenceStore := cache.NewMemorySessionStore[shopping.Preferences](time.Hour)
	idempotency := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() {
		_ = cartStore.Close()
		_ = favoritesStore.Close()
		_ = preferenceStore.Close()
		_ = idempotency.Close()
	})

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "handler-test-secret-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "alshbh-test",
		MaxRefreshCount:        3,
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	log := zap.NewNop()

	orders := trade.NewOrderService(orderRepo, governorateRepo, log)
	env := &testEnv{
		engine:       gin.New(),
		products:     catalogapp.NewProductService(productRepo, categoryRepo, colorRepo, sizeRepo, log),
		categories:   catalogapp.NewCategoryService(categoryRepo, productRepo),
		attributes:   catalogapp.NewAttributeService(colorRepo, sizeRepo),
		governorates: shippingapp.NewGovernorateService(governorateRepo),
		ads:          marketingapp.NewAdvertisementService(adRepo),
		cart:         shoppingapp.NewCartService(cartStore, productRepo, colorRepo, sizeRepo),
		favorites:    shoppingapp.NewFavoritesService(favoritesStore, productRepo),
		preferences:  shoppingapp.NewPreferenceService(preferenceStore),
		checkout:     trade.NewCheckoutService(cartStore, governorateRepo, orderRepo, idempotency, log),
		orders:       orders,
		home:         storefront.NewHomeService(productRepo, categoryRepo, adRepo),
		auth: identityapp.NewAuthService(settingRepo, jwtService, blacklist,
			identityapp.AuthServiceConfig{BootstrapPassword: "bootstrap-pass"}, log),
		settings:  identityapp.NewSettingService(settingRepo),
		jwt:       jwtService,
		blacklist: blacklist,
	}
	env.engine.Use(middleware.RequestID(), middleware.Session(middleware.SessionConfig{
		HeaderName: "X-Session-ID",
		CookieName: "sid",
	}))
	return env
}

// adminGroup returns a group guarded by the admin JWT middleware
func (e *testEnv) adminGroup(prefix string) *gin.RouterGroup {
	return e.engine.Group(prefix, middleware.AdminAuth(middleware.JWTMiddlewareConfig{
		JWTService:     e.jwt,
		TokenBlacklist: e.blacklist,
		Logger:         zap.NewNop(),
	}))
}

func (e *testEnv) accessToken(t *testing.T) string {
	t.Helper()
	pair, err := e.jwt.GenerateTokenPair(auth.AdminSubject, auth.RoleAdmin)
	require.NoError(t, err)
	return pair.AccessToken
}

// do sends a request with the test session header and an optional JSON body
func (e *testEnv) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Session-ID", testSessionID)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// seedProduct creates an active product priced at price
func (e *testEnv) seedProduct(t *testing.T, name, price string) *catalogapp.ProductResponse {
	t.Helper()
	p, err := e.products.Create(t.Context(), catalogapp.CreateProductRequest{
		Name:   name,
		NameAr: name + " ar",
		Price:  decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return p
}

func (e *testEnv) seedGovernorate(t *testing.T, name, fee string) *shippingapp.GovernorateResponse {
	t.Helper()
	g, err := e.governorates.Create(t.Context(), shippingapp.GovernorateRequest{
		Name:          name,
		NameAr:        name + " ar",
		ShippingPrice: decimal.RequireFromString(fee),
	})
	require.NoError(t, err)
	return g
}

// envelope decodes the standard response with data into T
type envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Error   *dto.ErrorInfo `json:"error"`
	Meta    *dto.Meta      `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := decode[json.RawMessage](t, w)
	require.NotNil(t, env.Error)
	return env.Error.Code
}
