package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	SMTP  SMTPConfig
	Mail  MailConfig
	Admin AdminConfig
	Week  WeekConfig
}

type AppConfig struct {
	Port string
}

type DBConfig struct {
	URL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	SSL      bool
}

type MailConfig struct {
	From      string
	ManagerTo string
}

type AdminConfig struct {
	PasswordHash string
	SessionTTL   time.Duration
}

type WeekConfig struct {
	StartDay time.Weekday
}

// Load reads configuration from the environment. main loads .env into the
// environment beforehand.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "9090")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAIL_FROM", "Noshe Cambridge <bookings@noshecambridge.co.uk>")
	viper.SetDefault("MAIL_MANAGER_TO", "noshecambridge@gmail.com")
	viper.SetDefault("ADMIN_SESSION_TTL", "12h")
	viper.SetDefault("WEEK_START_DAY", "Tuesday")

	if viper.GetString("DATABASE_URL") == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if viper.GetString("ADMIN_PASSWORD_HASH") == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required (bcrypt)")
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("ADMIN_SESSION_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_SESSION_TTL %q: %w", viper.GetString("ADMIN_SESSION_TTL"), err)
	}

	weekStart, err := parseWeekday(viper.GetString("WEEK_START_DAY"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
		},
		DB: DBConfig{
			URL: viper.GetString("DATABASE_URL"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			SSL:      viper.GetBool("SMTP_SSL"),
		},
		Mail: MailConfig{
			From:      viper.GetString("MAIL_FROM"),
			ManagerTo: viper.GetString("MAIL_MANAGER_TO"),
		},
		Admin: AdminConfig{
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
			SessionTTL:   sessionTTL,
		},
		Week: WeekConfig{
			StartDay: weekStart,
		},
	}

	return config, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("invalid WEEK_START_DAY %q", name)
	}

	return day, nil
}
