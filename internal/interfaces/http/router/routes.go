package router

import (
	"github.com/alshbh/storefront/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler served under the API prefix
type Handlers struct {
	System        *handler.SystemHandler
	Storefront    *handler.StorefrontHandler
	Catalog       *handler.CatalogHandler
	Governorate   *handler.GovernorateHandler
	Advertisement *handler.AdvertisementHandler
	Cart          *handler.CartHandler
	Favorites     *handler.FavoritesHandler
	Preference    *handler.PreferenceHandler
	Checkout      *handler.CheckoutHandler
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	Category      *handler.CategoryHandler
	Attribute     *handler.AttributeHandler
	Order         *handler.OrderHandler
	Setting       *handler.SettingHandler
	Upload        *handler.UploadHandler
}

// Guards holds the middleware that protects individual groups
type Guards struct {
	// Session resolves the shopper session for cart, favorites and checkout
	Session gin.HandlerFunc
	// Admin requires a valid admin access token
	Admin gin.HandlerFunc
	// Login throttles credential attempts
	Login gin.HandlerFunc
}

func use(dg *DomainGroup, middleware ...gin.HandlerFunc) *DomainGroup {
	for _, m := range middleware {
		if m != nil {
			dg.Use(m)
		}
	}
	return dg
}

func withGuard(guard gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if guard == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{guard, h}
}

// StorefrontGroups builds the public shopper-facing groups
func StorefrontGroups(h Handlers, g Guards) []RouteRegistrar {
	storefront := NewDomainGroup("storefront", "/storefront").
		GET("/home", h.Storefront.Home).Describe("Home page sections")

	catalog := NewDomainGroup("catalog", "/catalog").
		GET("/products", h.Catalog.ListProducts).Describe("Browse active products").
		GET("/products/:id", h.Catalog.GetProduct).Describe("Product detail").
		GET("/categories", h.Catalog.ListCategories).Describe("List categories").
		GET("/colors", h.Catalog.ListColors).Describe("List colors").
		GET("/sizes", h.Catalog.ListSizes).Describe("List sizes")

	shipping := NewDomainGroup("shipping", "/shipping").
		GET("/governorates", h.Governorate.ListActive).Describe("Active governorates with shipping fees")

	marketing := NewDomainGroup("marketing", "/marketing").
		GET("/advertisements", h.Advertisement.ListActive).Describe("Active banners")

	shop := use(NewDomainGroup("shop", "/shop"), g.Session)
	shop.Group("cart", "/cart").
		GET("", h.Cart.Get).Describe("Current cart").
		DELETE("", h.Cart.Clear).Describe("Empty the cart").
		POST("/items", h.Cart.AddItem).Describe("Add a line").
		PUT("/items/:item_id", h.Cart.UpdateItem).Describe("Change line quantity").
		DELETE("/items/:item_id", h.Cart.RemoveItem).Describe("Remove a line")
	shop.Group("favorites", "/favorites").
		GET("", h.Favorites.List).Describe("Favorite products").
		POST("", h.Favorites.Add).Describe("Add a favorite").
		POST("/:product_id/toggle", h.Favorites.Toggle).Describe("Toggle a favorite").
		GET("/:product_id", h.Favorites.Contains).Describe("Is the product a favorite").
		DELETE("/:product_id", h.Favorites.Remove).Describe("Remove a favorite")
	shop.Group("preferences", "/preferences").
		GET("/dark-mode", h.Preference.GetDarkMode).Describe("Dark mode preference").
		PUT("/dark-mode", h.Preference.SetDarkMode).Describe("Set dark mode").
		POST("/dark-mode/toggle", h.Preference.ToggleDarkMode).Describe("Toggle dark mode")

	checkout := use(NewDomainGroup("checkout", "/checkout"), g.Session).
		POST("/preview", h.Checkout.Preview).Describe("Price the cart for a governorate").
		POST("", h.Checkout.Checkout).Describe("Place an order")

	system := NewDomainGroup("system", "/system").
		GET("/ping", h.System.Ping).Describe("Liveness ping")

	return []RouteRegistrar{storefront, catalog, shipping, marketing, shop, checkout, system}
}

// AuthGroup builds the admin authentication routes. Login and refresh are
// public; the rest need a token.
func AuthGroup(h Handlers, g Guards) RouteRegistrar {
	return NewDomainGroup("auth", "/auth").
		POST("/login", withGuard(g.Login, h.Auth.Login)...).Describe("Admin login").
		POST("/refresh", h.Auth.RefreshToken).Describe("Refresh the token pair").
		GET("/session", withGuard(g.Admin, h.Auth.Session)...).Describe("Inspect the calling token").
		POST("/logout", withGuard(g.Admin, h.Auth.Logout)...).Describe("Revoke the current token").
		PUT("/password", withGuard(g.Admin, h.Auth.ChangePassword)...).Describe("Change the admin password")
}

// AdminGroup builds the back-office routes, all behind the admin guard
func AdminGroup(h Handlers, g Guards) RouteRegistrar {
	admin := use(NewDomainGroup("admin", "/admin"), g.Admin)

	admin.Group("products", "/products").
		GET("", h.Product.List).Describe("List products").
		POST("", h.Product.Create).Describe("Create a product").
		GET("/:id", h.Product.GetByID).Describe("Get a product").
		PUT("/:id", h.Product.Update).Describe("Replace a product").
		DELETE("/:id", h.Product.Delete).Describe("Delete a product").
		POST("/:id/activate", h.Product.Activate).Describe("Show a product").
		POST("/:id/deactivate", h.Product.Deactivate).Describe("Hide a product").
		PUT("/:id/featured", h.Product.SetFeatured).Describe("Set the featured flag")

	admin.Group("categories", "/categories").
		GET("", h.Category.List).Describe("List categories").
		POST("", h.Category.Create).Describe("Create a category").
		GET("/:id", h.Category.GetByID).Describe("Get a category").
		PUT("/:id", h.Category.Update).Describe("Update a category").
		DELETE("/:id", h.Category.Delete).Describe("Delete a category")

	admin.Group("colors", "/colors").
		GET("", h.Attribute.ListColors).Describe("List colors").
		POST("", h.Attribute.CreateColor).Describe("Create a color").
		PUT("/:id", h.Attribute.UpdateColor).Describe("Update a color").
		DELETE("/:id", h.Attribute.DeleteColor).Describe("Delete a color")

	admin.Group("sizes", "/sizes").
		GET("", h.Attribute.ListSizes).Describe("List sizes").
		POST("", h.Attribute.CreateSize).Describe("Create a size").
		PUT("/:id", h.Attribute.UpdateSize).Describe("Update a size").
		DELETE("/:id", h.Attribute.DeleteSize).Describe("Delete a size")

	admin.Group("governorates", "/governorates").
		GET("", h.Governorate.List).Describe("List governorates").
		POST("", h.Governorate.Create).Describe("Create a governorate").
		GET("/:id", h.Governorate.GetByID).Describe("Get a governorate").
		PUT("/:id", h.Governorate.Update).Describe("Update a governorate").
		DELETE("/:id", h.Governorate.Delete).Describe("Delete a governorate").
		POST("/:id/activate", h.Governorate.Activate).Describe("Open shipping").
		POST("/:id/deactivate", h.Governorate.Deactivate).Describe("Close shipping")

	admin.Group("advertisements", "/advertisements").
		GET("", h.Advertisement.List).Describe("List advertisements").
		POST("", h.Advertisement.Create).Describe("Create an advertisement").
		GET("/:id", h.Advertisement.GetByID).Describe("Get an advertisement").
		PUT("/:id", h.Advertisement.Update).Describe("Update an advertisement").
		DELETE("/:id", h.Advertisement.Delete).Describe("Delete an advertisement").
		POST("/:id/activate", h.Advertisement.Activate).Describe("Show a banner").
		POST("/:id/deactivate", h.Advertisement.Deactivate).Describe("Hide a banner")

	admin.Group("orders", "/orders").
		GET("", h.Order.List).Describe("List orders").
		GET("/stats", h.Order.Stats).Describe("Order counters and revenue").
		GET("/:id", h.Order.GetByID).Describe("Get an order").
		DELETE("/:id", h.Order.Delete).Describe("Delete an order").
		PUT("/:id/status", h.Order.UpdateStatus).Describe("Move an order to a new status").
		GET("/:id/packing-slip", h.Order.PackingSlip).Describe("Printable packing slip")

	admin.Group("settings", "/settings").
		GET("", h.Setting.List).Describe("List settings").
		GET("/:key", h.Setting.Get).Describe("Get a setting").
		PUT("/:key", h.Setting.Set).Describe("Upsert a setting").
		DELETE("/:key", h.Setting.Delete).Describe("Delete a setting")

	admin.Group("uploads", "/uploads").
		POST("/presign", h.Upload.Presign).Describe("Presign an image upload")

	admin.Group("system", "/system").
		GET("/info", h.System.GetSystemInfo).Describe("Build and runtime info")

	return admin
}

// RegisterAPI mounts the storefront, auth and admin groups on r
func RegisterAPI(r *Router, h Handlers, g Guards) *Router {
	r.Register(StorefrontGroups(h, g)...)
	r.Register(AuthGroup(h, g), AdminGroup(h, g))
	return r
}
