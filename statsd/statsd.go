// Package statsd is a helper package that wraps some common statsd methods.
// It hides the datadog dependency so a future migration only needs to edit
// this single file; the no-op client keeps metrics optional.
package statsd

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// EmitCommitStat reports how long a commit phase took. The stage tag is
// "commit_added" or "commit_removed".
func EmitCommitStat(start time.Time, stage string) {
	duration := time.Since(start)
	err := Client().Timing("commit", duration, []string{stage}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit commit stat: %v", err)
	}
}

// EmitEntityCount reports the size of the authoritative entity collection.
func EmitEntityCount(count int) {
	err := Client().Gauge("entities.live", float64(count), nil, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit entity count: %v", err)
	}
}

func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("helix"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return err
	}
	// Success! replace the global client
	client = newClient
	return nil
}
