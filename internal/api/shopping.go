package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/internal/middleware"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/shopping"
	"github.com/pageza/mealplanner/backend/internal/types"
)

type ShoppingHandler struct {
	shopping service.IShoppingService
	auth     middleware.TokenValidator
	limiter  *middleware.RateLimiter
	log      *logrus.Logger
}

// NewShoppingHandler creates a ShoppingHandler. limiter may be nil, in
// which case uploads are not rate limited.
func NewShoppingHandler(svc service.IShoppingService, auth middleware.TokenValidator, limiter *middleware.RateLimiter, log *logrus.Logger) *ShoppingHandler {
	return &ShoppingHandler{shopping: svc, auth: auth, limiter: limiter, log: log}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	list := router.Group("/shopping-list")
	list.Use(middleware.AuthMiddleware(h.auth))
	{
		list.GET("", h.GetList)
		list.POST("/items", h.AddItem)
		list.PATCH("/items/:key", h.SetFlags)
		list.GET("/export", h.ExportText)
		if h.limiter != nil {
			list.POST("/export", h.limiter.RateLimitMiddleware(), h.UploadExport)
		} else {
			list.POST("/export", h.UploadExport)
		}
	}
}

func (h *ShoppingHandler) GetList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}
	list, err := h.shopping.GetList(c.Request.Context(), userID, week)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ShoppingHandler) AddItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}
	var req types.ManualItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	list, err := h.shopping.AddItem(c.Request.Context(), userID, week, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// SetFlags toggles one line. The path key is normalized the same way
// ingredient names are, so "Olive Oil" and "olive oil" address one line.
func (h *ShoppingHandler) SetFlags(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}
	var req types.ItemFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	list, err := h.shopping.SetFlags(c.Request.Context(), userID, week, shopping.KeyOf(c.Param("key")), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ShoppingHandler) ExportText(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}
	selectedOnly, _ := strconv.ParseBool(c.Query("selected"))
	text, err := h.shopping.ExportText(c.Request.Context(), userID, week, selectedOnly)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func (h *ShoppingHandler) UploadExport(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}
	res, err := h.shopping.UploadExport(c.Request.Context(), userID, week)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
