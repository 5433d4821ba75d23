package config

import (
	"reflect"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"hostel-desk/utils"
)

var Config = viper.New()

var config_listeners []func()

// RegisterNewConfigListener adds a callback invoked whenever the config
// file changes on disk. Duplicate registrations are ignored.
func RegisterNewConfigListener(new_listener func()) {
	for _, listener := range config_listeners {
		if reflect.ValueOf(new_listener).Pointer() == reflect.ValueOf(listener).Pointer() {
			utils.Logger.Warn().Msg("config listener already registered")
			return
		}
	}
	config_listeners = append(config_listeners, new_listener)
}

func OnNewConfig() {
	for _, listener := range config_listeners {
		listener()
	}
}

// Setup loads defaults, the optional hosteldesk config file, and the
// environment, then watches the file for changes.
func Setup() {
	// set defaults
	Config.SetDefault("data_file", "hostel_rooms.csv")
	Config.SetDefault("storage_driver", "csv")
	Config.SetDefault("seed_rooms", 45)
	Config.SetDefault("log_level", "info")
	Config.SetDefault("log_file", "hostel-desk.log")

	// config file
	Config.SetConfigName("hosteldesk")
	Config.AddConfigPath("./")
	Config.AddConfigPath("./config")
	Config.AddConfigPath("$HOME/.hosteldesk")
	Config.AddConfigPath("/etc/hosteldesk")

	if err := Config.ReadInConfig(); err != nil {
		// running without a config file is the common case
		utils.Logger.Debug().Msgf("no config file loaded: %v", err)
	}

	// environment variables
	Config.AutomaticEnv()

	// watch for changes
	Config.WatchConfig()
	Config.OnConfigChange(func(e fsnotify.Event) {
		utils.Logger.Info().Msgf("config file changed: %v", e.Name)
		OnNewConfig()
	})
}
