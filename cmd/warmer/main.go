// Command warmer pre-populates the browse caches: the hotel list, each
// hotel's detail entry and its room list. Run it after deploys or cache
// flushes so the first visitors hit warm entries.
package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayfront/internal/adapters/observability"
	redisad "stayfront/internal/adapters/redis"
	"stayfront/internal/adapters/resapi"
	"stayfront/internal/app"
	"stayfront/internal/domain"
	"stayfront/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	logger := observability.NewLogger(cfg.AppEnv)
	log.Logger = logger

	// anonymous client: warming only touches public browse endpoints
	api := resapi.New(cfg.APIBase, nil, 10)
	api.SetTimeout(cfg.HTTPTimeout)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	queries := app.NewQueryService(api, cache, cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	hotels, err := queries.ListHotels(ctx, domain.HotelsQuery{Limit: 100})
	if err != nil {
		logger.Fatal().Err(err).Msg("warming hotel list failed")
	}

	var failed atomic.Int64
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	for _, h := range hotels {
		h := h
		if err := sem.Acquire(ctx, 1); err != nil {
			logger.Error().Err(err).Msg("warm aborted")
			break
		}
		go func() {
			defer sem.Release(1)
			if _, err := queries.GetHotel(ctx, h.ID); err != nil {
				failed.Add(1)
				logger.Warn().Err(err).Int64("hotel", h.ID).Msg("hotel warm failed")
				return
			}
			if _, err := queries.ListRooms(ctx, domain.RoomsQuery{HotelID: &h.ID, Limit: 50}); err != nil {
				failed.Add(1)
				logger.Warn().Err(err).Int64("hotel", h.ID).Msg("rooms warm failed")
			}
		}()
	}
	// wait for all in-flight workers
	if err := sem.Acquire(ctx, int64(cfg.Workers)); err != nil {
		logger.Error().Err(err).Msg("wait for workers failed")
	}

	logger.Info().
		Int("hotels", len(hotels)).
		Int64("failed", failed.Load()).
		Dur("took", time.Since(start)).
		Msg("cache warm complete")
}
