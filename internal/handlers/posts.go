package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/middleware"
	"github.com/kiernans/blog-top/internal/service"
)

// PostsHandler handles post CRUD requests.
type PostsHandler struct {
	postService service.PostService
}

// NewPostsHandler creates a new PostsHandler instance.
func NewPostsHandler(postService service.PostService) *PostsHandler {
	return &PostsHandler{postService: postService}
}

// List godoc
// @Summary List posts
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Post
// @Failure 401 {object} httperr.Response
// @Router /posts [get]
func (h *PostsHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Create godoc
// @Summary Create a post
// @Description Create a post owned by the authenticated user
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.CreatePostRequest true "Post payload"
// @Success 201 {object} models.Post
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /posts [post]
func (h *PostsHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Get godoc
// @Summary Get a post
// @Description Get a single post owned by the authenticated user
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Post id"
// @Success 200 {object} models.Post
// @Failure 404 {object} httperr.Response
// @Router /posts/{postId} [get]
func (h *PostsHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), postID, ownerID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update godoc
// @Summary Update a post
// @Description Partially update a post; only fields present in the body change
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param postId path int true "Post id"
// @Param request body service.UpdatePostRequest true "Fields to change"
// @Success 200 {object} models.Post
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /posts/{postId} [put]
func (h *PostsHandler) Update(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.postService.Update(c.Request.Context(), postID, ownerID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Post id"
// @Success 200 {object} models.Post
// @Failure 404 {object} httperr.Response
// @Router /posts/{postId} [delete]
func (h *PostsHandler) Delete(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	post, err := h.postService.Delete(c.Request.Context(), postID, ownerID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// parseIDParam parses a numeric path parameter, responding 400 on malformed
// input.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "Invalid "+name+" parameter.")
		return 0, false
	}
	return id, true
}
