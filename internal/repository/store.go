package repository

import (
	"context"
	"io"

	"github.com/Kravtmk/whoami-app/internal/model"
)

// RoleStore persists the role registry as one document. found is false when
// nothing was ever saved.
type RoleStore interface {
	LoadRoles(ctx context.Context) (roles []model.Role, found bool, err error)
	SaveRoles(ctx context.Context, roles []model.Role) error
}

// DayLogStore maps (userID, day) to a day log. SaveDayLog fully overwrites the
// record under the log's key.
type DayLogStore interface {
	GetDayLog(ctx context.Context, userID, day string) (log *model.DayLog, found bool, err error)
	SaveDayLog(ctx context.Context, log *model.DayLog) error
}

type Store interface {
	RoleStore
	DayLogStore
	io.Closer
}
