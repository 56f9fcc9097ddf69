package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App is the typed view of the environment. godotenv fills the environment
// from .env first; envconfig binds it here.
type App struct {
	Port string `envconfig:"PORT" default:"8080"`

	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`

	// Hours a room stays blocked after checkout for cleaning/turnover.
	CheckoutBufferHours int `envconfig:"CHECKOUT_BUFFER_HOURS" default:"2"`

	SMTPHost string `envconfig:"SMTP_HOST" default:""`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER" default:""`
	SMTPPass string `envconfig:"SMTP_PASS" default:""`
	MailFrom string `envconfig:"MAIL_FROM" default:"bookings@hotel.local"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
