package boost

import (
	"sync"

	"github.com/rs/zerolog"
)

const (
	SOURCE_LOG_FIELD_NAME = "src"
	LOG_SOURCE            = "boost"
)

var (
	loggerLock sync.Mutex
	logger     = zerolog.Nop()
)

type Config struct {
	//logger used for debug events, defaults to a no-op logger.
	Logger zerolog.Logger

	//if true the prototype is boosted, see BoostPrototype.
	BoostPrototype bool
}

// Configure applies config to the package, it can be called several times.
func Configure(config Config) {
	loggerLock.Lock()
	logger = config.Logger.With().Str(SOURCE_LOG_FIELD_NAME, LOG_SOURCE).Logger()
	loggerLock.Unlock()

	if config.BoostPrototype {
		BoostPrototype()
	}
}

func getLogger() zerolog.Logger {
	loggerLock.Lock()
	defer loggerLock.Unlock()

	return logger
}
