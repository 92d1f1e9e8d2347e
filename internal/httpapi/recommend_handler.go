package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	recommender Recommender
	limiter     Limiter
}

func NewRecommendHandler(recommender Recommender, limiter Limiter) *RecommendHandler {
	return &RecommendHandler{recommender: recommender, limiter: limiter}
}

// Recommend is best effort: an empty list is a valid answer, the model
// call never fails the request.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	key := c.ClientIP()
	if user, ok := identityFrom(c); ok {
		key = user.ID
	}

	if h.limiter != nil && !h.limiter.Allow(c.Request.Context(), key) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	books := h.recommender.Recommend(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"recommendations": toBookDTOs(books)})
}
