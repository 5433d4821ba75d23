package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"hostel-desk/config"
	"hostel-desk/models"
	"hostel-desk/services"
	"hostel-desk/storage"
	"hostel-desk/ui"
	"hostel-desk/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	config.Setup()
	utils.LogInit(config.Config.GetString("log_level"), config.Config.GetString("log_file"))
	config.RegisterNewConfigListener(func() {
		utils.LogInit(config.Config.GetString("log_level"), config.Config.GetString("log_file"))
	})

	driver := config.Config.GetString("storage_driver")
	dataFile := config.Config.GetString("data_file")
	store, err := storage.Open(driver, dataFile)
	if err != nil {
		utils.Logger.Fatal().Err(err).Str("driver", driver).Msg("cannot open room store")
	}
	utils.Logger.Info().Str("driver", driver).Str("data_file", dataFile).Msg("room store opened")

	roomService := services.NewRoomService(store, config.Config.GetInt("seed_rooms"))
	if err := roomService.Load(); err != nil {
		if !errors.Is(err, models.ErrMalformedData) {
			utils.Logger.Fatal().Err(err).Msg("cannot load room table")
		}
		// Unreadable table: keep running on the default room block. The
		// next save overwrites the bad file.
		utils.Logger.Warn().Err(err).Msg("room table unreadable, falling back to defaults")
		if err := roomService.ResetToDefaults(); err != nil {
			utils.Logger.Fatal().Err(err).Msg("cannot write seeded room table")
		}
	}
	bookingService := services.NewBookingService(roomService)

	program := tea.NewProgram(ui.New(roomService, bookingService), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		utils.Logger.Fatal().Err(err).Msg("ui exited with error")
	}
	utils.Logger.Info().Msg("shut down")
}
