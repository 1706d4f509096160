package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	botpkg "github.com/BruksfildServices01/massage-bot/internal/bot"
	"github.com/BruksfildServices01/massage-bot/internal/config"
	dbpkg "github.com/BruksfildServices01/massage-bot/internal/db"
	"github.com/BruksfildServices01/massage-bot/internal/flow"
	"github.com/BruksfildServices01/massage-bot/internal/infra/repository"
	"github.com/BruksfildServices01/massage-bot/internal/logger"
	"github.com/BruksfildServices01/massage-bot/internal/scheduler"
	"github.com/BruksfildServices01/massage-bot/internal/server"
	"github.com/BruksfildServices01/massage-bot/internal/session"
	"github.com/BruksfildServices01/massage-bot/internal/timezone"
	adminuc "github.com/BruksfildServices01/massage-bot/internal/usecase/admin"
	bookinguc "github.com/BruksfildServices01/massage-bot/internal/usecase/booking"
)

func main() {
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	logger.Init(cfg.Env)
	zlog := logger.Get()
	defer zlog.Sync()

	loc := timezone.Location(cfg.Timezone)

	db := dbpkg.NewDB(cfg)
	repo := repository.NewBookingGormRepository(db)

	bot, err := botpkg.New(cfg.BotToken, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to telegram", zap.Error(err))
	}

	// Redis upgrades sessions to shared storage with native expiry and
	// reminders to durable asynq tasks; without it everything stays
	// in-process, matching the original system.
	var sessions session.Store
	var sched scheduler.Scheduler
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)

		redisOpts := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
		sched = scheduler.NewAsynqScheduler(redisOpts, zlog)
		go func() {
			if err := scheduler.RunWorker(redisOpts, bot, zlog); err != nil {
				zlog.Fatal("reminder worker stopped", zap.Error(err))
			}
		}()
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		sched = scheduler.NewMemoryScheduler(bot, zlog)
	}

	now := func() time.Time { return time.Now().In(loc) }
	avail := bookinguc.NewGetAvailability(repo, cfg.Hours, cfg.BreakMinutes)
	engine := flow.NewEngine(flow.Deps{
		Config:        cfg,
		Sessions:      sessions,
		Availability:  avail,
		ListDays:      bookinguc.NewListDays(avail, cfg.Hours, cfg.HorizonDays, now),
		CreateBooking: bookinguc.NewCreateBooking(repo),
		AdminList:     adminuc.NewListBookings(repo),
		AdminStats:    adminuc.NewSourceStats(repo),
		AdminPrune:    adminuc.NewPruneOld(repo),
		Scheduler:     sched,
		Location:      loc,
		Log:           zlog,
	})
	bot.SetEngine(engine)

	if cfg.WebhookURL != "" {
		url := strings.TrimRight(cfg.WebhookURL, "/") + "/webhook/" + cfg.BotToken
		if err := bot.SetWebhook(url); err != nil {
			zlog.Fatal("failed to set webhook", zap.Error(err))
		}

		r := server.New(cfg, bot, zlog)
		zlog.Info("webhook server running", zap.String("addr", cfg.Addr()))
		if err := r.Run(cfg.Addr()); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
		return
	}

	if err := bot.Run(context.Background()); err != nil && err != context.Canceled {
		zlog.Fatal("bot stopped", zap.Error(err))
	}
}
