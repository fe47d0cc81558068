package room

import (
	"context"
	"time"
)

// PurgeStale deletes rooms (with their players and votes) whose last
// update is older than ttl, and returns how many were removed.
func (s *Service) PurgeStale(ttl time.Duration) (int, error) {
	ids, err := s.store.StaleRoomIDs(time.Now().Add(-ttl))
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, id := range ids {
		unlock := s.locks.lock(id)
		err := s.store.DeleteRoomCascade(id)
		unlock()
		if err != nil {
			s.log.Error().Err(err).Str("room_id", id).Msg("failed to purge stale room")
			continue
		}
		s.locks.forget(id)
		purged++
	}

	if purged > 0 {
		s.log.Info().Int("count", purged).Msg("purged stale rooms")
	}
	return purged, nil
}

// RunJanitor purges stale rooms on a fixed interval until ctx is done.
// Rooms have no explicit delete operation, so this is the only way they
// ever leave the store.
func (s *Service) RunJanitor(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.PurgeStale(ttl); err != nil {
				s.log.Error().Err(err).Msg("janitor run failed")
			}
		case <-ctx.Done():
			return
		}
	}
}
