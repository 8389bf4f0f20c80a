package helix

import (
	"github.com/rs/zerolog"

	"github.com/helix-sim/helix/entity"
	"github.com/helix-sim/helix/types"
)

func loadComponentIntoArrayLogger(c types.Component, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Str("capability", c.Capability())
	if types.IsAsyncCapable(c) {
		dictLogger = dictLogger.Bool("async_capable", true)
	}
	return arrayLogger.Dict(dictLogger)
}

func loadEntityIntoEvent(zeroLoggerEvent *zerolog.Event, e *entity.Entity) *zerolog.Event {
	arrayLogger := zerolog.Arr()
	for _, c := range e.Components() {
		arrayLogger = loadComponentIntoArrayLogger(c, arrayLogger)
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	if e.Prototype() != "" {
		zeroLoggerEvent.Str("prototype", e.Prototype())
	}
	return zeroLoggerEvent.Uint64("entity_id", uint64(e.ID()))
}

// logEntity logs an entity and its capability set at the given level.
func logEntity(logger *zerolog.Logger, level zerolog.Level, e *entity.Entity, msg string) {
	zeroLoggerEvent := logger.WithLevel(level)
	loadEntityIntoEvent(zeroLoggerEvent, e).Msg(msg)
}
