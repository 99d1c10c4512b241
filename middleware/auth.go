package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	userRepo "trailhub/database/repository/user"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
)

// JWTAuthMiddleware authenticates requests with a Bearer token. The token
// hash is checked against the Redis auth cache first, falling back to the
// stored hash in the user record on a miss.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("userID", userID)
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		} else if err != redis.Nil {
			log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
		}

		// Cache miss: check the stored hash.
		usr, err := repo.GetByIDWithProjection(userID, bson.M{"id": 1, "tokenHash": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()

		c.Set("userID", userID)
		c.Next()
	}
}
