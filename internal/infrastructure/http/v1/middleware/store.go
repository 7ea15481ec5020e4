package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/core/apperror"
	appctx "storeadmin/internal/core/context"
	"storeadmin/internal/core/id"
	"storeadmin/internal/domain/store"
)

// StoreParam is the route parameter carrying the store id.
const StoreParam = "storeId"

// StoreAccessChecker resolves a store the user may open.
type StoreAccessChecker interface {
	CheckAccess(ctx context.Context, userID, storeID id.ID) (*store.Store, error)
}

// StoreAccess loads the store named by the route and rejects users who do not own it.
// Must run after Auth.
func StoreAccess(checker StoreAccessChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userID, err := id.Parse(appctx.GetUserID(ctx))
		if err != nil {
			abortUnauthorized(c, "authentication required")
			return
		}
		storeID, err := id.Parse(c.Param(StoreParam))
		if err != nil {
			_ = c.Error(apperror.NewInvalidInput(StoreParam, "invalid store id"))
			c.Abort()
			return
		}

		st, err := checker.CheckAccess(ctx, userID, storeID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(appctx.WithStoreID(ctx, st.ID.String()))
		c.Set("store_id", st.ID)
		c.Set("store", st)
		c.Next()
	}
}

// CurrentStore returns the store resolved by StoreAccess.
func CurrentStore(c *gin.Context) (*store.Store, bool) {
	v, ok := c.Get("store")
	if !ok {
		return nil, false
	}
	st, ok := v.(*store.Store)
	return st, ok
}
