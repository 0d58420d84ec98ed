// Package main is the entry point for the SentinelBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PancyStudios/SentinelBotGo/internal/commands"
	"github.com/PancyStudios/SentinelBotGo/internal/events"
	"github.com/PancyStudios/SentinelBotGo/internal/platform"
	"github.com/PancyStudios/SentinelBotGo/pkg/audit"
	"github.com/PancyStudios/SentinelBotGo/pkg/automod"
	"github.com/PancyStudios/SentinelBotGo/pkg/config"
	"github.com/PancyStudios/SentinelBotGo/pkg/database"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/mqtt"
	"github.com/PancyStudios/SentinelBotGo/pkg/policy"
	"github.com/PancyStudios/SentinelBotGo/pkg/web"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando SentinelBot Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Build the policy persister for the configured backend
	persister, db := buildPersister(cfg)
	defer func() {
		if db != nil {
			err := db.Disconnect()
			if err != nil {
				return
			}
		}
	}()

	store, err := policy.NewStore(persister)
	if err != nil {
		// Un backend ilegible al arrancar es fatal; arrancar con la
		// memoria vacía sobreescribiría las políticas al primer guardado
		logger.Critical(fmt.Sprintf("Error cargando políticas: %v", err), "Main")
		os.Exit(1)
	}
	logger.Success(fmt.Sprintf("Almacén de políticas listo (%d servidores)", store.GuildCount()), "Main")

	// Initialize MQTT
	mqttClientID := "sentinelbot"
	if !cfg.IsProd() {
		mqttClientID = "sentinelbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Audit fan-out: logger + MQTT + live web feed
	dispatcher := audit.NewDispatcher()
	dispatcher.Register(audit.LogSink{})
	dispatcher.Register(audit.MQTTSink{Pub: mqttClient})

	// Decision engine
	engine := automod.NewEngine(
		store,
		cfg.Automod,
		platform.NewDiscordActions(discordClient.Session),
		dispatcher,
	)

	// Initialize web server
	webServer := web.Init(engine)
	dispatcher.Register(webServer.Stream())
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Register commands and events
	commands.RegisterAll(discordClient, engine)
	events.RegisterAll(discordClient, engine)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {
			return
		}
	}(discordClient)

	// Periodic sweep of expired rate windows so idle authors do not
	// accumulate memory
	scheduler := cron.New()
	_, err = scheduler.AddFunc("@every 5m", func() {
		removed := engine.Rates().Sweep(time.Now())
		if removed > 0 {
			logger.Debug(fmt.Sprintf("Ventanas de spam expiradas purgadas: %d", removed), "Sweep")
		}
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo programar la limpieza de ventanas: %v", err), "Main")
	}
	_, err = scheduler.AddFunc("@every 30m", func() {
		stats := engine.Snapshot()
		logger.Info(fmt.Sprintf(
			"Estadísticas: %d servidores, %d mensajes evaluados, %d filtrados, %d baneos automáticos",
			engine.Store().GuildCount(), stats.MessagesChecked, stats.Filtered, stats.AutoBans,
		), "Stats")
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo programar el reporte de estadísticas: %v", err), "Main")
	}
	scheduler.Start()
	defer scheduler.Stop()

	logger.Success("SentinelBot Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando SentinelBot Go...", "Main")
}

// buildPersister selects the policy backend. The file store is the
// default; MongoDB is opt-in via policyBackend=mongo.
func buildPersister(cfg *config.Config) (policy.Persister, *database.Database) {
	if !cfg.UsesMongo() {
		logger.Info(fmt.Sprintf("Backend de políticas: fichero (%s)", cfg.PolicyFile), "Main")
		return policy.NewFileStore(cfg.PolicyFile), nil
	}

	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		// NewStore fallará después; un backend ilegible al arrancar es fatal
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
	}
	if db != nil {
		database.InitGlobalDataManagers(db)
	}

	ms, err := policy.NewMongoStore()
	if err != nil {
		logger.Critical(fmt.Sprintf("Error inicializando MongoStore: %v", err), "Main")
		os.Exit(1)
	}

	logger.Info("Backend de políticas: MongoDB", "Main")
	return ms, db
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
