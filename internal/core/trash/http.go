// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package trash

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/newsdesk/internal/platform/middleware"
	requestutil "github.com/taibuivan/newsdesk/internal/platform/request"
	"github.com/taibuivan/newsdesk/internal/platform/respond"
	"github.com/taibuivan/newsdesk/internal/platform/sec"
	"github.com/taibuivan/newsdesk/pkg/pagination"
)

// Handler exposes the trash over HTTP.
type Handler struct {
	manager *Manager
}

// NewHandler constructs a trash [Handler].
func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// Routes mounts the trash endpoints. Editors may list and restore; only
// admins may delete items for good.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))

		editor.Get("/", handler.listItems)
		editor.Get("/{id}", handler.getItem)
		editor.Post("/{id}/restore", handler.restoreItem)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Delete("/{id}", handler.deleteItem)
	})

	return router
}

/*
GET /api/v1/trash.

Request (Query):
  - resource_key: string (optional)
  - page, limit: int

Response:
  - 200: []Item: Paginated list, newest first
*/
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := Filter{ResourceKey: requestutil.Query(request, "resource_key")}

	items, total, err := handler.manager.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if items == nil {
		items = []*Item{}
	}
	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/trash/{id}.

Response:
  - 200: Item
  - 404: Trash item not found
*/
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.manager.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

/*
POST /api/v1/trash/{id}/restore.

Response:
  - 200: RestoreResult
  - 404: Trash item not found
  - 409: The resource id or one of its paths is taken again
  - 422: No restorer for the item's resource type
*/
func (handler *Handler) restoreItem(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.manager.Restore(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
DELETE /api/v1/trash/{id}.

Response:
  - 204: No Content
  - 404: Trash item not found
*/
func (handler *Handler) deleteItem(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.manager.Remove(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
