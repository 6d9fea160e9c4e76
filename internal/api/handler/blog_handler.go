package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/bloglist/internal/api/dto"
	"github.com/martijn/bloglist/internal/api/middleware"
	"github.com/martijn/bloglist/internal/core/domain"
	"github.com/martijn/bloglist/internal/core/service"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ListBlogs handles GET /api/blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.BlogResponse, len(blogs))
	for i, blog := range blogs {
		response[i] = toBlogResponse(blog)
	}

	c.JSON(http.StatusOK, response)
}

// CreateBlog handles POST /api/blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	claims, _ := middleware.GetAuthClaims(c)

	input := service.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}

	blog, err := h.blogService.Create(c.Request.Context(), input, claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBlogResponse(blog))
}

// UpdateBlog handles PUT /api/blogs/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	input := service.UpdateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}

	blog, err := h.blogService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponse(blog))
}

// DeleteBlog handles DELETE /api/blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id := c.Param("id")

	claims, _ := middleware.GetAuthClaims(c)

	if err := h.blogService.Delete(c.Request.Context(), id, claims); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func toBlogResponse(blog *domain.Blog) dto.BlogResponse {
	response := dto.BlogResponse{
		ID:     blog.ID,
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
	}

	if blog.Owner != nil {
		response.User = &dto.BlogOwner{
			ID:       blog.Owner.ID,
			Username: blog.Owner.Username,
			Name:     blog.Owner.Name,
		}
	}

	return response
}

// respondError maps a service error to its status code; anything else is a 500.
func respondError(c *gin.Context, err error) {
	if svcErr, ok := service.AsServiceError(err); ok {
		c.JSON(svcErr.Code, dto.ErrorResponse{
			Error:   http.StatusText(svcErr.Code),
			Message: svcErr.Message,
			Code:    svcErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal Server Error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}
