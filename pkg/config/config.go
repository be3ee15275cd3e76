package config

import (
	"time"
)

type Upstream struct {
	ApiUrl       string        `envconfig:"API_URL" required:"true"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	MaxBodyBytes int64         `envconfig:"MAX_BODY_BYTES" default:"65536"`
}

type Assets struct {
	Dir        string `envconfig:"DIR" default:"public/fonts"`
	FontName   string `envconfig:"FONT_NAME" default:"Inter-Regular.ttf"`
	FontFamily string `envconfig:"FONT_FAMILY" default:"Inter"`
	CacheFonts bool   `envconfig:"CACHE_FONTS" default:"true"`
}

type Redis struct {
	URL       string `envconfig:"URL" default:""`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"badges:limiter:"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[badges]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Upstream  *Upstream  `envconfig:"UPSTREAM"`
	Assets    *Assets    `envconfig:"ASSETS"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
