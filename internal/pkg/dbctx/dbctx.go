package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context is what services hand to repositories: the request context plus
// the transaction the call should run in. A nil Tx means the repository
// uses its own base connection.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
