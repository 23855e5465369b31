package posts

import (
	"net/http"
	"strings"

	"growing-backend/database"
	"growing-backend/internal/domain/posts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxPostLength = 2000

func CreatePost(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := strings.TrimSpace(input.Content)
	if content == "" || len(content) > maxPostLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post content must be between 1 and 2000 characters"})
		return
	}

	post := posts.Post{
		UserID:  c.GetString("user_id"),
		Content: content,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func ListFeed(c *gin.Context) {
	var feed []posts.Post
	err := database.DB.Preload("User").
		Order("created_at DESC").Limit(50).Find(&feed).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load feed"})
		return
	}
	c.JSON(http.StatusOK, feed)
}

func DeletePost(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.Parse(postID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post posts.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if post.UserID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this post"})
		return
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
