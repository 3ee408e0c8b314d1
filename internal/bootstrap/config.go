package bootstrap

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	BoardSize       int    `mapstructure:"BOARD_SIZE"`
	GameName        string `mapstructure:"GAME_NAME"`
	BlackPlayer     string `mapstructure:"BLACK_PLAYER"`
	WhitePlayer     string `mapstructure:"WHITE_PLAYER"`
	BotReadingDepth int    `mapstructure:"BOT_READING_DEPTH"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	viper.SetConfigType("env")

	viper.SetDefault("BOARD_SIZE", 9)
	viper.SetDefault("GAME_NAME", "console game")
	viper.SetDefault("BLACK_PLAYER", "human")
	viper.SetDefault("WHITE_PLAYER", "bot")
	viper.SetDefault("BOT_READING_DEPTH", 24)

	err := viper.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
