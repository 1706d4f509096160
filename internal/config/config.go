package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/massage-bot/internal/models"
)

type Config struct {
	BotToken   string
	WebhookURL string
	ServerPort string

	DBUrl      string
	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AdminIDs []int64

	Env      string
	Timezone string

	MasterName      string
	ChannelUsername string

	Hours        models.WorkingHours
	BreakMinutes int
	HorizonDays  int

	SessionTTL time.Duration

	Services []models.Service
}

// DefaultServices is the studio catalog. Labels double as button captions,
// so they carry the human price/duration text.
var DefaultServices = []models.Service{
	{Label: "Общий массаж — 60 мин (2000р)", DurationMin: 60},
	{Label: "Массаж головы — 30 мин (1000р)", DurationMin: 30},
	{Label: "Шейно-воротниковая зона — 45 мин (1000р)", DurationMin: 45},
	{Label: "Антицеллюлитный массаж — 2ч (5000р)", DurationMin: 120},
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		WebhookURL: os.Getenv("WEBHOOK_URL"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBUrl:      os.Getenv("DATABASE_URL"),
		SQLitePath: getEnv("SQLITE_PATH", "appointments.db"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		AdminIDs: parseIDs(os.Getenv("ADMIN_IDS")),

		Env:      getEnv("ENV", "development"),
		Timezone: getEnv("TIMEZONE", "Europe/Moscow"),

		MasterName:      getEnv("MASTER_NAME", "Елена Крылова"),
		ChannelUsername: getEnv("CHANNEL_USERNAME", "@massage_elena_channel"),

		Hours: models.WorkingHours{
			StartHour: getEnvInt("WORK_START_HOUR", 9),
			EndHour:   getEnvInt("WORK_END_HOUR", 18),
			Weekdays:  parseList(getEnv("WORK_WEEKDAYS", "mon,tue,wed,thu,fri,sat")),
		},
		BreakMinutes: getEnvInt("BREAK_AFTER_SERVICE", 15),
		HorizonDays:  getEnvInt("HORIZON_DAYS", 7),

		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)) * time.Minute,

		Services: DefaultServices,
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (c *Config) ServiceByLabel(label string) (models.Service, bool) {
	for _, s := range c.Services {
		if s.Label == label {
			return s, true
		}
	}
	return models.Service{}, false
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

func parseIDs(raw string) []int64 {
	var out []int64
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if id, err := strconv.ParseInt(p, 10, 64); err == nil {
			out = append(out, id)
		}
	}
	return out
}
