package providers

import (
	"context"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
)

// ScheduleProvider defines how upstream season schedules are fetched and normalized.
// Implementations must return games in the order the upstream returned them.
// A nil slice with a nil error means the upstream reported no schedule at all.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error)
}
