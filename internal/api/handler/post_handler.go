package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiosk123/user-api/internal/api/metrics"
	"github.com/kiosk123/user-api/internal/api/version"
	"github.com/kiosk123/user-api/internal/core/ports"
	"github.com/kiosk123/user-api/internal/representation"
)

// PostHandler serves the posts nested under a user. Posts have a single
// profile; the version descriptor still controls links and base path.
type PostHandler struct {
	service  ports.PostService
	registry *representation.Registry
}

func NewPostHandler(service ports.PostService, registry *representation.Registry) *PostHandler {
	return &PostHandler{service: service, registry: registry}
}

// List handles GET /users/:userId/posts.
//
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   object
// @Failure      404  {object}  object
// @Router       /users/{userId}/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	posts, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	desc := version.FromContext(c)
	profile := desc.ProfileFor("post")
	views := make([]*representation.Representation, 0, len(posts))
	for _, p := range posts {
		view, err := h.registry.Project(postRepresentation(p), profile)
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
		Links: postCollectionLinks(desc.BasePath, userID),
	})
}

// Create handles POST /users/:userId/posts.
//
// @Summary      Create a post for a user
// @Tags         posts
// @Accept       json
// @Success      201
// @Failure      404  {object}  object
// @Router       /users/{userId}/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), userID, req.Description)
	if err != nil {
		return err
	}
	metrics.PostsCreatedTotal.Inc()

	c.Response().Header().Set(echo.HeaderLocation, childLocation(c, id))
	return c.NoContent(http.StatusCreated)
}

// Update handles PUT /users/:userId/posts. The post id travels in the body.
//
// @Summary      Update a user's post
// @Tags         posts
// @Accept       json
// @Success      200
// @Failure      404  {object}  object
// @Router       /users/{userId}/posts [put]
func (h *PostHandler) Update(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), userID, req.ID, req.Description); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, childLocation(c, req.ID))
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /users/:userId/posts/:postId.
//
// @Summary      Delete a user's post
// @Tags         posts
// @Success      204
// @Failure      404  {object}  object
// @Router       /users/{userId}/posts/{postId} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	postID, err := pathID(c, "postId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, postID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
