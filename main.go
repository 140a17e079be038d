package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/discochess/castle-discord-service/cleanup"
	"github.com/discochess/castle-discord-service/config"
	"github.com/discochess/castle-discord-service/events"
	"github.com/discochess/castle-discord-service/health"
	"github.com/discochess/castle-discord-service/lichess"
	logger "github.com/discochess/castle-discord-service/log"
	"github.com/discochess/castle-discord-service/session"
	"github.com/discochess/castle-discord-service/stats"
	"github.com/discochess/castle-discord-service/upload"
	"github.com/discochess/castle-discord-service/views"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadAllConfigs()
	if err != nil {
		log.Fatalf("Fatal error loading config: %v", err)
	}
	if err := cfg.Glyphs.Validate(lichess.ModeKeys(), views.Keys()); err != nil {
		log.Fatalf("Fatal error in glyph config: %v", err)
	}

	// 2. Initialize Discord Session
	s, err := session.NewSession(cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	// 3. Initialize Logger
	logger.Init(s, cfg.Discord.LogChannelID)

	// 4. Connect to Discord
	if err = s.Open(); err != nil {
		logger.Fatal("Error opening connection to Discord", err)
	}

	// 5. Post Initial Boot Message
	bootMessage, err := logger.PostInitialMessage("`Castle` is starting up...")
	if err != nil {
		logger.Error("Failed to post initial boot message", err)
	}
	bootMessageID := ""
	if bootMessage != nil {
		bootMessageID = bootMessage.ID
	}
	updateBootMessage := func(content string) {
		if bootMessage != nil {
			logger.UpdateInitialMessage(bootMessageID, content)
		}
	}

	updateBootMessage("`Castle` is starting up...\n✅ Discord connection established")

	// 6. Initialize Lookup Stats Store
	store, err := stats.New(cfg.Redis)
	if err != nil {
		logger.Error("Failed to initialize lookup stats store", err)
	}
	updateBootMessage("`Castle` is starting up...\n✅ Discord connection established\n✅ Stats store initialized")

	// 7. Perform Boot-time Cleanup
	performCleanup(s, cfg.Discord, bootMessageID)
	updateBootMessage("`Castle` is starting up...\n✅ Discord connection established\n✅ Stats store initialized\n✅ Cleanup complete")

	// 8. Initialize Event Handlers
	client := lichess.NewClient(cfg.Lichess, cfg.Glyphs.Trophies)
	uploader := &upload.ChannelUploader{Session: s, ChannelID: cfg.Discord.UploadChannelID}
	handler := events.New(cfg.Discord, cfg.Glyphs, client, store, uploader)
	s.AddHandler(handler.MessageCreate)
	s.AddHandler(handler.InteractionCreate)

	// 9. Final Health Check and Ready Message
	performHealthCheck(s, store, cfg, bootMessageID)

	// 10. Wait for shutdown signal
	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down: live navigation sessions strip their
	// controls before the gateway drops.
	handler.Close()
	if store != nil {
		_ = store.Close()
	}
	s.Close()
	fmt.Println("\nBot shutting down.")
}

// performCleanup runs all boot-time cleanup tasks.
func performCleanup(s *discordgo.Session, discordCfg *config.DiscordConfig, bootMessageID string) {
	var wg sync.WaitGroup
	cleanupResults := make(chan cleanup.Result, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cleanupResults <- cleanup.ClearChannel(s, discordCfg.LogChannelID, bootMessageID)
	}()
	go func() {
		defer wg.Done()
		cleanupResults <- cleanup.ClearChannel(s, discordCfg.UploadChannelID, "")
	}()
	wg.Wait()
	close(cleanupResults)

	cleanupStats := make(map[string]int)
	for result := range cleanupResults {
		cleanupStats[result.Name] += result.Count
	}
	log.Printf("Cleanup complete: %+v", cleanupStats)
}

// performHealthCheck runs final system checks and posts the final status message.
func performHealthCheck(s *discordgo.Session, store *stats.Store, cfg *config.AllConfig, bootMessageID string) {
	cpuUsage, _ := health.GetCPUUsage()
	memUsage, _ := health.GetMemoryUsage()
	discordStatus := health.GetDiscordStatus(s)
	statsStatus := health.GetStatsStatus(store, cfg.Redis)
	guilds := health.GetActiveGuilds(s)

	statusFields := []string{
		"**System Status**",
		fmt.Sprintf("💻 CPU: `%.2f%%`", cpuUsage),
		fmt.Sprintf("🧠 Memory: `%.2f%%`", memUsage),
		"",
		"**Service Status**",
		fmt.Sprintf("🤖 Discord: %s", discordStatus),
		fmt.Sprintf("📈 Stats Store: %s", statsStatus),
		fmt.Sprintf("🔎 Top Lookups: %s", health.GetTopLookups(store, 3)),
		fmt.Sprintf("🌐 Guilds: `%d`", len(guilds)),
	}

	finalStatus := strings.Join(statusFields, "\n")
	if bootMessageID != "" {
		logger.UpdateInitialMessage(bootMessageID, finalStatus)
	}
}
