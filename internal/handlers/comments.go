package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/middleware"
	"github.com/kiernans/blog-top/internal/service"
)

// CommentsHandler handles comment CRUD requests nested under a post.
type CommentsHandler struct {
	commentService service.CommentService
}

// NewCommentsHandler creates a new CommentsHandler instance.
func NewCommentsHandler(commentService service.CommentService) *CommentsHandler {
	return &CommentsHandler{commentService: commentService}
}

// List godoc
// @Summary List comments for a post
// @Description List every comment on a post; not filtered by owner
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Post id"
// @Success 200 {array} models.Comment
// @Failure 401 {object} httperr.Response
// @Router /posts/{postId}/comments [get]
func (h *CommentsHandler) List(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create godoc
// @Summary Create a comment
// @Description Create a comment on a post, owned by the authenticated user
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param postId path int true "Post id"
// @Param request body service.CommentRequest true "Comment payload"
// @Success 201 {object} models.Comment
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /posts/{postId}/comments [post]
func (h *CommentsHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), postID, ownerID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Get godoc
// @Summary Get a comment
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Post id"
// @Param commentId path int true "Comment id"
// @Success 200 {object} models.Comment
// @Failure 404 {object} httperr.Response
// @Router /posts/{postId}/comments/{commentId} [get]
func (h *CommentsHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), commentID, postID, ownerID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Update godoc
// @Summary Update a comment
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param postId path int true "Post id"
// @Param commentId path int true "Comment id"
// @Param request body service.CommentRequest true "Comment payload"
// @Success 200 {object} models.Comment
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /posts/{postId}/comments/{commentId} [put]
func (h *CommentsHandler) Update(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), commentID, postID, ownerID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Post id"
// @Param commentId path int true "Comment id"
// @Success 200 {object} models.Comment
// @Failure 404 {object} httperr.Response
// @Router /posts/{postId}/comments/{commentId} [delete]
func (h *CommentsHandler) Delete(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.commentService.Delete(c.Request.Context(), commentID, postID, ownerID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}
