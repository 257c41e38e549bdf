// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"time"

	"github.com/danielhkuo/lucky-ticket/board"
	"github.com/danielhkuo/lucky-ticket/lottery"
)

// Deps bundles what the handlers need
type Deps struct {
	DB        *sql.DB
	Generator *lottery.Generator
	Catalog   lottery.Catalog
	Boards    *board.Store

	// Now defaults to time.Now
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
