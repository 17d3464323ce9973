package stubapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 6 * time.Hour

type Handler struct {
	store  *Store
	logger *slog.Logger
	jwtKey []byte
}

func NewHandler(store *Store, logger *slog.Logger, jwtKey []byte) *Handler {
	return &Handler{
		store:  store,
		logger: logger.With("component", "stubapi"),
		jwtKey: jwtKey,
	}
}

// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Products())
}

// GET /products/search?value=<text>
// Matches against name and category, case-insensitively. No match is a 404,
// which the client renders as an empty result list.
func (h *Handler) SearchProducts(c *gin.Context) {
	value := strings.ToLower(c.Query("value"))

	matches := h.store.Products()[:0:0]
	for _, p := range h.store.Products() {
		if strings.Contains(strings.ToLower(p.Name), value) ||
			strings.Contains(strings.ToLower(p.Category), value) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		jsonError(c, http.StatusNotFound, "No products found")
		return
	}
	c.JSON(http.StatusOK, matches)
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	if !h.store.CreateUser(req.Username, req.Password) {
		jsonError(c, http.StatusBadRequest, "Username is already taken")
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user registered", "username", req.Username)
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// POST /auth/login
// Returns {"success":true,"token":...,"username":...} on valid credentials.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	if !h.store.Authenticate(req.Username, req.Password) {
		jsonError(c, http.StatusBadRequest, "Password is incorrect")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(h.jwtKey)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "sign token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    signed,
		"username": req.Username,
	})
}

// GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	username := c.GetString("username")
	c.JSON(http.StatusOK, h.store.Cart(username))
}

type cartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       *int   `json:"qty" binding:"required"`
}

// POST /cart
// Sets the absolute quantity for one product; qty <= 0 removes the entry.
// Responds with the user's full updated cart.
func (h *Handler) PostCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "productId and qty are required")
		return
	}

	if _, ok := h.store.FindProduct(req.ProductID); !ok {
		jsonError(c, http.StatusNotFound, "Product doesn't exist")
		return
	}

	username := c.GetString("username")
	cart := h.store.SetQty(username, req.ProductID, *req.Qty)

	h.logger.InfoContext(c.Request.Context(), "cart updated",
		"username", username, "product_id", req.ProductID, "qty", *req.Qty)
	c.JSON(http.StatusOK, cart)
}

func jsonError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
