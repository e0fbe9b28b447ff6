package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	ESPNAPI  ESPNAPI
	Season   Season
	Redis    Redis
	Server   Server
	Telegram Telegram
}

type ESPNAPI struct {
	Year     string `envconfig:"YEAR" required:"true"`
	LeagueID string `envconfig:"LEAGUE_ID" required:"true"`
	SWID     string `envconfig:"SWID"`
	ESPNS2   string `envconfig:"ESPN_S2"`
}

type Season struct {
	FirstWeek int `envconfig:"FIRST_WEEK" default:"1"`
	LastWeek  int `envconfig:"LAST_WEEK" default:"17"`
}

type Redis struct {
	URL string `envconfig:"REDIS_URL"`
}

type Server struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// Telegram is optional; with no token the bot surface stays off.
type Telegram struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
