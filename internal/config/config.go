package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	DiscordClientID               string `mapstructure:"DISCORD_CLIENT_ID"`
	DiscordClientSecret           string `mapstructure:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURL            string `mapstructure:"DISCORD_REDIRECT_URL"`
	DiscordGuildID                string `mapstructure:"DISCORD_GUILD_ID"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	LogLevel                      string `mapstructure:"LOG_LEVEL"`
	Timezone                      string `mapstructure:"TIMEZONE"`
	Event                         Event  `mapstructure:",squash"`
}

// Event holds the fixed details shown on the landing page.
type Event struct {
	Name        string `mapstructure:"EVENT_NAME" json:"name"`
	Tagline     string `mapstructure:"EVENT_TAGLINE" json:"tagline"`
	Description string `mapstructure:"EVENT_DESCRIPTION" json:"description"`
	Date        string `mapstructure:"EVENT_DATE" json:"date"`
	Time        string `mapstructure:"EVENT_TIME" json:"time"`
	Venue       string `mapstructure:"EVENT_VENUE" json:"venue"`
	Address     string `mapstructure:"EVENT_ADDRESS" json:"address"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "rsvp.db")
	viper.SetDefault("DISCORD_REDIRECT_URL", "http://127.0.0.1:8080/auth/discord/callback")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TIMEZONE", "America/Cuiaba")

	viper.SetDefault("EVENT_NAME", "Saia da Torre")
	viper.SetDefault("EVENT_TAGLINE", "Convite Exclusivo")
	viper.SetDefault("EVENT_DESCRIPTION", "Um evento transformador projetado para quebrar barreiras e expandir seus horizontes. Confirme sua presença e prepare-se para uma nova perspectiva.")
	viper.SetDefault("EVENT_DATE", "06/03/2026")
	viper.SetDefault("EVENT_TIME", "18h")
	viper.SetDefault("EVENT_VENUE", "Na loja Zem Multimarcas")
	viper.SetDefault("EVENT_ADDRESS", "R. Tesouro, 355 - Vale do Sol, Campo Verde - MT")

	viper.BindEnv("DISCORD_CLIENT_ID")
	viper.BindEnv("DISCORD_CLIENT_SECRET")
	viper.BindEnv("DISCORD_GUILD_ID")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("JWT_SECRET")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
