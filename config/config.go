// Package config loads application settings from config.yaml, .env and
// EMPATHY_* environment variables, with defaults for every key.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Root struct {
	Server     Server     `mapstructure:"server"`
	Classifier Classifier `mapstructure:"classifier"`
	Synth      Synth      `mapstructure:"synth"`
	Audio      Audio      `mapstructure:"audio"`
	Voices     Voices     `mapstructure:"voices"`
	Log        Log        `mapstructure:"log"`
}

type Server struct {
	Addr string `mapstructure:"addr"`
}

type Classifier struct {
	URL     string `mapstructure:"url"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

type Synth struct {
	Provider string `mapstructure:"provider"` // edge, google or none
	URL      string `mapstructure:"url"`
	Voice    string `mapstructure:"voice"`
	Timeout  int    `mapstructure:"timeout"` // seconds
}

type Audio struct {
	Dir string `mapstructure:"dir"`
}

type Voices struct {
	File string `mapstructure:"file"` // optional catalog override
}

type Log struct {
	Level string `mapstructure:"level"`
}

func Load() (*Root, error) {
	// Pick up a local .env first so AutomaticEnv sees its values.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("classifier.url", "http://localhost:8001")
	viper.SetDefault("classifier.model", "j-hartmann/emotion-english-distilroberta-base")
	viper.SetDefault("classifier.timeout", 60)
	viper.SetDefault("synth.provider", "edge")
	viper.SetDefault("synth.url", "http://localhost:8002")
	viper.SetDefault("synth.voice", "en-US-AriaNeural")
	viper.SetDefault("synth.timeout", 60)
	viper.SetDefault("audio.dir", "static/audio")
	viper.SetDefault("voices.file", "")
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix("EMPATHY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file: defaults and environment apply.
	}

	var root Root
	if err := viper.Unmarshal(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }
