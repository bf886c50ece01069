package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// isStaffKey is the key used to store the authenticated user's staff flag.
const isStaffKey = contextKey("isStaff")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// IsStaffFromContext reports whether the authenticated user carries the staff
// claim.
func IsStaffFromContext(c *gin.Context) bool {
	isStaffVal := c.Request.Context().Value(isStaffKey)
	isStaff, ok := isStaffVal.(bool)
	return ok && isStaff
}
