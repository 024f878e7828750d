package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kiosk123/user-api/internal/api/metrics"
	"github.com/kiosk123/user-api/internal/api/version"
	"github.com/kiosk123/user-api/internal/core/ports"
	"github.com/kiosk123/user-api/internal/representation"
)

// UserHandler serves the user resource under every registered API version.
// The same handler backs /users and /admin/users: the resolved version
// descriptor decides the profile and link policy, not the route.
type UserHandler struct {
	service  ports.UserService
	registry *representation.Registry
}

func NewUserHandler(service ports.UserService, registry *representation.Registry) *UserHandler {
	return &UserHandler{service: service, registry: registry}
}

// List handles GET /users and GET /admin/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   object
// @Failure      406  {object}  object
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	desc := version.FromContext(c)

	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	profile := desc.ProfileFor("user")
	views := make([]*representation.Representation, 0, len(users))
	for _, u := range users {
		view, err := h.registry.Project(userRepresentation(u), profile)
		if err != nil {
			return err
		}
		views = append(views, view)
	}
	metrics.ProjectionsTotal.WithLabelValues(profile).Add(float64(len(views)))

	if !desc.Links {
		return c.JSON(http.StatusOK, views)
	}
	return c.JSON(http.StatusOK, collectionResponse{
		Items: views,
		Links: userCollectionLinks(desc.BasePath),
	})
}

// Get handles GET /users/:id and GET /admin/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Success      200  {object}  object
// @Failure      404  {object}  object
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	desc := version.FromContext(c)
	profile := desc.ProfileFor("user")
	view, err := h.registry.Project(userRepresentation(user), profile)
	if err != nil {
		return err
	}
	view = representation.Augment(view, desc.Links, userLinks(desc.BasePath, user.ID))
	metrics.ProjectionsTotal.WithLabelValues(profile).Inc()

	return c.JSON(http.StatusOK, view)
}

// Create handles POST /users. On success it answers 201 with a Location
// header pointing at the new resource under the request's own base path.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Success      201
// @Failure      400  {object}  object
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Password: req.Password,
		SSN:      req.SSN,
	})
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.Inc()

	c.Response().Header().Set(echo.HeaderLocation, childLocation(c, id))
	return c.NoContent(http.StatusCreated)
}

// Update handles PUT /users/:id. The path id is authoritative; a body id,
// when present, must agree with it.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Success      200
// @Failure      404  {object}  object
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.ID != 0 && req.ID != id {
		return &ValidationError{Violations: []Violation{
			{Field: "id", Message: "id must match the path id"},
		}}
	}

	if _, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
		SSN:      req.SSN,
	}); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Request().URL.Path)
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /users/:id. Deleting a user cascades to its posts.
//
// @Summary      Delete a user and its posts
// @Tags         users
// @Success      204
// @Failure      404  {object}  object
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// collectionResponse wraps a projected list when the version attaches links.
// Link-free versions return the bare array instead.
type collectionResponse struct {
	Items []*representation.Representation `json:"items"`
	Links representation.Links             `json:"_links"`
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// childLocation builds the canonical URL of a freshly created child: the
// request's own path plus the assigned identity.
func childLocation(c echo.Context, id int64) string {
	return c.Request().URL.Path + "/" + strconv.FormatInt(id, 10)
}
