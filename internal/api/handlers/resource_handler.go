package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/HakimZ78/devhakim-api/internal/api/types"
	"github.com/HakimZ78/devhakim-api/internal/api/validators"
	"github.com/HakimZ78/devhakim-api/internal/cache"
	"github.com/HakimZ78/devhakim-api/internal/models"
	"github.com/HakimZ78/devhakim-api/internal/repository"
)

// ResourceHandler serves the uniform CRUD contract for one collection:
//
//	GET    /api/v1/<resource>            list (ordered), ?id= selects one
//	POST   /api/v1/<resource>            create, body without id
//	PUT    /api/v1/<resource>            update, body with id
//	DELETE /api/v1/<resource>?id=        delete
//	POST   /api/v1/<resource>/reorder    atomic order_index swap
//
// Every admin page previously reimplemented this flow ad hoc; the handler is
// instantiated once per resource instead.
type ResourceHandler[T any, PT interface {
	*T
	models.Keyed
}] struct {
	resource    string
	repo        repository.BaseRepository[T]
	cache       *cache.ListCache
	listFn      func(ctx context.Context, q url.Values) ([]T, error)
	afterMutate func(ctx context.Context, entity PT)
}

// Option configures a ResourceHandler.
type Option[T any, PT interface {
	*T
	models.Keyed
}] func(*ResourceHandler[T, PT])

// WithListFn overrides the default ordered listing, e.g. for query-parameter
// filters (?category_id=, ?featured=, ?q=).
func WithListFn[T any, PT interface {
	*T
	models.Keyed
}](fn func(ctx context.Context, q url.Values) ([]T, error)) Option[T, PT] {
	return func(h *ResourceHandler[T, PT]) { h.listFn = fn }
}

// WithAfterMutate runs after every successful create, update or delete, with
// the affected entity. Used to enqueue derived-progress recalculation.
func WithAfterMutate[T any, PT interface {
	*T
	models.Keyed
}](fn func(ctx context.Context, entity PT)) Option[T, PT] {
	return func(h *ResourceHandler[T, PT]) { h.afterMutate = fn }
}

func NewResourceHandler[T any, PT interface {
	*T
	models.Keyed
}](resource string, repo repository.BaseRepository[T], lc *cache.ListCache, opts ...Option[T, PT]) *ResourceHandler[T, PT] {
	h := &ResourceHandler[T, PT]{resource: resource, repo: repo, cache: lc}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *ResourceHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if idStr := q.Get("id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			writeErrorStr(w, http.StatusBadRequest, "invalid id")
			return
		}
		var item T
		if err := h.repo.GetByID(r.Context(), id, &item); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: item})
		return
	}

	// Only the unfiltered listing is cached.
	cacheable := len(q) == 0
	if cacheable {
		if body, ok := h.cache.GetList(r.Context(), h.resource); ok {
			writeRaw(w, http.StatusOK, body)
			return
		}
	}

	var items []T
	var err error
	if h.listFn != nil {
		items, err = h.listFn(r.Context(), q)
	} else {
		items, err = h.repo.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	resp := types.APIResponse{Success: true, Data: items}
	if cacheable {
		if body, err := json.Marshal(resp); err == nil {
			h.cache.PutList(r.Context(), h.resource, body)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ResourceHandler[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	entity := PT(new(T))
	if err := json.NewDecoder(r.Body).Decode(entity); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	// Identity assignment belongs to the store. A draft carrying a temporary
	// id must be created, never updated, so the id is rejected outright.
	if entity.PrimaryKey() != uuid.Nil {
		writeErrorStr(w, http.StatusBadRequest, "create must not carry an id")
		return
	}
	if err := validators.New().Struct(entity); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Create(r.Context(), (*T)(entity)); err != nil {
		writeError(w, err)
		return
	}
	h.cache.Invalidate(r.Context(), h.resource)
	if h.afterMutate != nil {
		h.afterMutate(r.Context(), entity)
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: entity})
}

func (h *ResourceHandler[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	entity := PT(new(T))
	if err := json.NewDecoder(r.Body).Decode(entity); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if entity.PrimaryKey() == uuid.Nil {
		writeErrorStr(w, http.StatusBadRequest, "update requires an id")
		return
	}
	if err := validators.New().Struct(entity); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	// Save would insert a missing row; the contract wants 404 instead.
	var existing T
	if err := h.repo.GetByID(r.Context(), entity.PrimaryKey(), &existing); err != nil {
		writeError(w, err)
		return
	}
	if err := h.repo.Update(r.Context(), (*T)(entity)); err != nil {
		writeError(w, err)
		return
	}
	h.cache.Invalidate(r.Context(), h.resource)
	if h.afterMutate != nil {
		h.afterMutate(r.Context(), entity)
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: entity})
}

func (h *ResourceHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid id")
		return
	}

	// The mutation hook needs the entity's foreign keys, which are gone after
	// the delete.
	var deleted PT
	if h.afterMutate != nil {
		var existing T
		if err := h.repo.GetByID(r.Context(), id, &existing); err != nil {
			writeError(w, err)
			return
		}
		deleted = &existing
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	h.cache.Invalidate(r.Context(), h.resource)
	if h.afterMutate != nil {
		h.afterMutate(r.Context(), deleted)
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

// Reorder swaps two entries' order_index values in one transaction, replacing
// the two-independent-updates flow that could strand the store in a half
// swapped order.
func (h *ResourceHandler[T, PT]) Reorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		A uuid.UUID `json:"a"`
		B uuid.UUID `json:"b"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.A == uuid.Nil || req.B == uuid.Nil || req.A == req.B {
		writeErrorStr(w, http.StatusBadRequest, "reorder requires two distinct ids")
		return
	}
	if err := h.repo.SwapOrder(r.Context(), req.A, req.B); err != nil {
		writeError(w, err)
		return
	}
	h.cache.Invalidate(r.Context(), h.resource)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
