// Package handlers wires the HTTP surface of the spare parts shop. Handlers
// stay thin: bind and validate the payload, call the store, shape the
// response.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/carzone/spareparts-shop/api-service/store"
	"github.com/carzone/spareparts-shop/shared/config"
	"github.com/carzone/spareparts-shop/shared/kafka"
	"github.com/carzone/spareparts-shop/shared/models"
)

// Handler holds the dependencies shared by all endpoints. The store and the
// kafka writer are injected at startup; either may be nil when the backing
// system is not configured.
type Handler struct {
	store       store.Store
	cfg         config.Config
	orderWriter *kafkago.Writer
}

func New(s store.Store, cfg config.Config, orderWriter *kafkago.Writer) *Handler {
	return &Handler{store: s, cfg: cfg, orderWriter: orderWriter}
}

// Register wires all routes onto the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/test", h.testDatabase)
	e.GET("/api/spare-parts", h.listSpareParts)
	e.POST("/api/spare-parts", h.createSparePart)
	e.GET("/api/spare-parts/:id", h.getSparePart)
	e.POST("/api/orders", h.createOrder)
	e.GET("/schema", h.getSchema)
}

func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"detail": msg})
}

func (h *Handler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Car Spare Parts Shop API is running"})
}

// testDatabase reports store connectivity and configuration presence. It
// degrades to descriptive status strings and never fails the request.
func (h *Handler) testDatabase(c echo.Context) error {
	response := echo.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      statusSet(h.cfg.DatabaseURL != ""),
		"database_name":     statusSet(h.cfg.DatabaseName != ""),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			response["database"] = "✅ Connected & Working"
			response["connection_status"] = "Connected"
			if names, err := h.store.Collections(ctx); err == nil {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
			}
		}
	}

	return c.JSON(http.StatusOK, response)
}

func statusSet(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// listSpareParts handles GET /api/spare-parts with optional q, category,
// brand and limit parameters.
func (h *Handler) listSpareParts(c echo.Context) error {
	if h.store == nil {
		return detail(c, http.StatusInternalServerError, "Database not configured")
	}

	filter := store.PartFilter{
		Q:        c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.Limit = n
		}
	}

	parts, err := h.store.FindParts(c.Request().Context(), filter)
	if err != nil {
		zap.S().Errorf("Failed to query spare parts: %v", err)
		return detail(c, http.StatusInternalServerError, "Failed to query spare parts")
	}

	return c.JSON(http.StatusOK, echo.Map{"items": parts})
}

func (h *Handler) createSparePart(c echo.Context) error {
	if h.store == nil {
		return detail(c, http.StatusInternalServerError, "Database not configured")
	}

	var payload sparePartPayload
	if err := c.Bind(&payload); err != nil {
		return detail(c, http.StatusBadRequest, "Unable to parse spare part")
	}
	if err := c.Validate(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"detail": "Validation failed",
			"fields": validationDetails(err),
		})
	}

	id, err := h.store.CreatePart(c.Request().Context(), payload.toModel())
	if err != nil {
		zap.S().Errorf("Failed to create spare part: %v", err)
		return detail(c, http.StatusInternalServerError, "Failed to create spare part")
	}

	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

func (h *Handler) getSparePart(c echo.Context) error {
	if h.store == nil {
		return detail(c, http.StatusInternalServerError, "Database not configured")
	}

	part, err := h.store.GetPart(c.Request().Context(), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return detail(c, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, store.ErrNotFound):
		return detail(c, http.StatusNotFound, "Not found")
	case err != nil:
		zap.S().Errorf("Failed to query spare part: %v", err)
		return detail(c, http.StatusInternalServerError, "Failed to query spare part")
	}

	return c.JSON(http.StatusOK, part)
}

func (h *Handler) createOrder(c echo.Context) error {
	if h.store == nil {
		return detail(c, http.StatusInternalServerError, "Database not configured")
	}

	var payload orderPayload
	if err := c.Bind(&payload); err != nil {
		return detail(c, http.StatusBadRequest, "Unable to parse order")
	}
	if err := c.Validate(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"detail": "Validation failed",
			"fields": validationDetails(err),
		})
	}

	order := payload.toModel()
	id, err := h.store.CreateOrder(c.Request().Context(), order)
	if err != nil {
		zap.S().Errorf("Failed to create order: %v", err)
		return detail(c, http.StatusInternalServerError, "Failed to create order")
	}

	h.publishOrderCreated(c.Request().Context(), id, order)

	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// publishOrderCreated emits the order-created event when a broker is
// configured. Publish failures are logged, never surfaced to the client.
func (h *Handler) publishOrderCreated(ctx context.Context, id string, order models.Order) {
	if h.orderWriter == nil {
		return
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		zap.S().Errorf("Unexpected order id %q: %v", id, err)
		return
	}
	order.Id = oid

	orderJSON, err := json.Marshal(order)
	if err != nil {
		zap.S().Errorf("Failed to marshal order event: %v", err)
		return
	}
	if err := kafka.WriteMessage(ctx, h.orderWriter, []byte(id), orderJSON); err != nil {
		zap.S().Errorf("Failed to publish order-created event: %v", err)
	}
}

func (h *Handler) getSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"collections": models.Collections()})
}
