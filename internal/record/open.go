package record

import (
	"fmt"

	"github.com/rs/zerolog"

	"studyhub/internal/config"
)

// Open picks the record store backend for the process and returns it
// along with the name of what was actually chosen. With STORE_BACKEND=auto
// a SurrealDB connection is attempted first; a connection fault is logged
// and the embedded store takes over for the rest of the process. The
// decision is never revisited per call.
func Open(cfg *config.AppConfig, log zerolog.Logger) (Store, string, error) {
	switch cfg.Store.Backend {
	case config.BackendSurreal:
		s, err := ConnectSurreal(cfg.Surreal, log)
		if err != nil {
			return nil, "", err
		}
		return s, config.BackendSurreal, nil

	case config.BackendLocal:
		s, err := OpenLocal(cfg.Local, log)
		if err != nil {
			return nil, "", err
		}
		return s, config.BackendLocal, nil

	case config.BackendAuto:
		if s, err := ConnectSurreal(cfg.Surreal, log); err == nil {
			return s, config.BackendSurreal, nil
		} else {
			log.Warn().Err(err).Msg("surrealdb unreachable, falling back to local store")
		}
		s, err := OpenLocal(cfg.Local, log)
		if err != nil {
			return nil, "", fmt.Errorf("open fallback store: %w", err)
		}
		return s, config.BackendLocal, nil

	default:
		return nil, "", fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
