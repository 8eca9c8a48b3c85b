// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/locale"
	"github.com/taibuivan/newsdesk/internal/platform/middleware"
	requestutil "github.com/taibuivan/newsdesk/internal/platform/request"
	"github.com/taibuivan/newsdesk/internal/platform/respond"
	"github.com/taibuivan/newsdesk/internal/platform/validate"
	"github.com/taibuivan/newsdesk/pkg/pagination"
	"github.com/taibuivan/newsdesk/pkg/query"
)

// Action names accepted by POST and PUT /{id}?action=.
const (
	ActionPublish    = "publish"
	ActionUnpublish  = "unpublish"
	ActionDraft      = "draft"
	ActionCopy       = "copy"
	ActionCopyLocale = "copy-locale"
)

// # Handler Implementation

// Handler translates HTTP requests into [Service] calls.
type Handler struct {
	service *Service
	locales locale.Set
}

// NewHandler constructs a news [Handler]. locales bounds every locale
// query parameter.
func NewHandler(service *Service, locales locale.Set) *Handler {
	return &Handler{service: service, locales: locales}
}

// Routes returns the admin endpoints. All of them require a token; the
// service checks the individual permissions.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listNews)
	router.Get("/types", handler.listTypes)
	router.Get("/{id}", handler.getNews)
	router.Post("/", handler.createNews)
	router.Post("/{id}", handler.postAction)
	router.Put("/{id}", handler.putNews)
	router.Delete("/{id}", handler.deleteNews)

	return router
}

// WebsiteRoutes returns the public, cached route lookup.
func (handler *Handler) WebsiteRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.websiteNews)
	return router
}

// # Lookup Endpoints

/*
GET /api/v1/news.

Request (Query):
  - locale: string (optional, default locale)
  - q: string (title search)
  - type: string
  - published: bool
  - page, limit: int

Response:
  - 200: []ListItem: Paginated list, newest first
*/
func (handler *Handler) listNews(writer http.ResponseWriter, request *http.Request) {
	code, err := requestutil.Locale(request, handler.locales)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	filter := Filter{
		Locale:    code,
		Query:     requestutil.Query(request, "q"),
		Type:      requestutil.Query(request, "type"),
		Published: query.OptionalBool(requestutil.Query(request, "published")),
	}

	items, total, err := handler.service.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if items == nil {
		items = []*ListItem{}
	}
	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/news/types.

Response:
  - 200: []TypeChoice
*/
func (handler *Handler) listTypes(writer http.ResponseWriter, request *http.Request) {
	types, err := handler.service.Types(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, types)
}

/*
GET /api/v1/news/{id}.

Response:
  - 200: View: The entity in the requested locale
  - 404: News not found
*/
func (handler *Handler) getNews(writer http.ResponseWriter, request *http.Request) {
	id, code, err := handler.target(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Get(request.Context(), id, code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entity)
}

// # Mutation Endpoints

/*
POST /api/v1/news.

Request (Body):
  - UpdateInput: JSON object; title required

Response:
  - 201: View: The created entity
  - 400: Validation failed
*/
func (handler *Handler) createNews(writer http.ResponseWriter, request *http.Request) {
	code, err := requestutil.Locale(request, handler.locales)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Create(request.Context(), code, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, entity)
}

/*
POST /api/v1/news/{id}?action=.

Request (Query):
  - action: publish | unpublish | draft | copy | copy-locale
  - locale: string (required for copy-locale)
  - src, dest: string (copy-locale; src defaults to locale, dest comma separated)

Response:
  - 200: View
  - 201: View (copy)
  - 400: Missing or unknown action
*/
func (handler *Handler) postAction(writer http.ResponseWriter, request *http.Request) {
	action := requestutil.Query(request, "action")
	if action == "" {
		respond.Error(writer, request, validate.RequiredError("action", "This field is required"))
		return
	}

	id, code, err := handler.target(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	switch action {
	case ActionPublish, ActionUnpublish, ActionDraft:
		handler.publishAction(writer, request, action, id, code)

	case ActionCopy:
		entity, err := handler.service.Copy(request.Context(), id, code)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, entity)

	case ActionCopyLocale:
		handler.copyLocale(writer, request, id, code)

	default:
		respond.Error(writer, request, unknownAction(action))
	}
}

/*
PUT /api/v1/news/{id}.

Description: With an action only the publish state changes. Without one
the body updates the fields, SEO, excerpt and route of the locale.

Response:
  - 200: View
  - 409: Version mismatch
*/
func (handler *Handler) putNews(writer http.ResponseWriter, request *http.Request) {
	id, code, err := handler.target(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if action := requestutil.Query(request, "action"); action != "" {
		switch action {
		case ActionPublish, ActionUnpublish, ActionDraft:
			handler.publishAction(writer, request, action, id, code)
		default:
			respond.Error(writer, request, unknownAction(action))
		}
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Update(request.Context(), id, code, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entity)
}

/*
DELETE /api/v1/news/{id}.

Response:
  - 204: No Content; the snapshot is in the trash
  - 404: News not found
*/
func (handler *Handler) deleteNews(writer http.ResponseWriter, request *http.Request) {
	id, code, err := handler.target(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id, code); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publishAction(writer http.ResponseWriter, request *http.Request, action string, id int64, code string) {
	var (
		entity *News
		err    error
	)
	if action == ActionPublish {
		entity, err = handler.service.Publish(request.Context(), id, code)
	} else {
		entity, err = handler.service.Unpublish(request.Context(), id, code)
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entity)
}

func (handler *Handler) copyLocale(writer http.ResponseWriter, request *http.Request, id int64, code string) {
	if requestutil.Query(request, "locale") == "" {
		respond.Error(writer, request, validate.RequiredError("locale", "This field is required"))
		return
	}

	src := code
	if requestutil.Query(request, "src") != "" {
		resolved, err := requestutil.LocaleParam(request, "src", handler.locales)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		src = resolved
	}

	raw := query.StringSlice(requestutil.Query(request, "dest"))
	v := &validate.Validator{}
	v.Custom("dest", len(raw) == 0, "At least one destination locale is required")

	dests := make([]string, 0, len(raw))
	for _, candidate := range raw {
		resolved, ok := handler.locales.Resolve(candidate)
		if !ok {
			v.Locale("dest", candidate, handler.locales)
			continue
		}
		dests = append(dests, resolved)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.CopyLocale(request.Context(), id, src, dests)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entity)
}

// # Website Endpoint

/*
GET /api/v1/website/news.

Request (Query):
  - path: string (required)
  - locale: string (optional, default locale)

Response:
  - 200: View: The live entity behind the route
  - 404: No live news at path
*/
func (handler *Handler) websiteNews(writer http.ResponseWriter, request *http.Request) {
	path := requestutil.Query(request, "path")
	if path == "" {
		respond.Error(writer, request, validate.RequiredError("path", "This field is required"))
		return
	}

	code, err := requestutil.Locale(request, handler.locales)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	body, err := handler.service.Website(request.Context(), path, code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Raw(writer, http.StatusOK, body)
}

// # Helpers

// target parses the {id} path parameter and the locale query parameter.
func (handler *Handler) target(request *http.Request) (int64, string, error) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		return 0, "", err
	}

	code, err := requestutil.Locale(request, handler.locales)
	if err != nil {
		return 0, "", err
	}
	return id, code, nil
}

func unknownAction(action string) *apperr.AppError {
	return apperr.BadRequest(fmt.Sprintf("Unknown action %q.", action))
}
