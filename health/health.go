// Package health reports the status of the bot's dependencies for the
// boot message in the log channel.
package health

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/discochess/castle-discord-service/config"
	"github.com/discochess/castle-discord-service/stats"
)

// GetCPUUsage returns the current CPU usage as a percentage.
func GetCPUUsage() (float64, error) {
	percentages, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(percentages) == 0 {
		return 0, fmt.Errorf("could not get CPU usage")
	}
	return percentages[0], nil
}

// GetMemoryUsage returns the current memory usage as a percentage.
func GetMemoryUsage() (float64, error) {
	virtualMem, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return virtualMem.UsedPercent, nil
}

// GetDiscordStatus checks and returns the status of the Discord
// connection as a formatted string.
func GetDiscordStatus(s *discordgo.Session) string {
	if s.DataReady {
		return "**OK**"
	}
	if err := s.Open(); err != nil {
		return fmt.Sprintf("**ERROR**: `%v`", err)
	}
	return "**OK** (reconnected)"
}

// GetStatsStatus checks and returns the status of the lookup stats
// store as a formatted string.
func GetStatsStatus(store *stats.Store, cfg *config.RedisConfig) string {
	if cfg == nil || cfg.Addr == "" {
		return "`Not Configured`"
	}
	if store == nil {
		return "**ERROR**: `Initialization failed`"
	}
	if err := store.Ping(); err != nil {
		return fmt.Sprintf("**ERROR**: `%v`", err)
	}
	total, err := store.TotalLookups()
	if err != nil {
		return fmt.Sprintf("**ERROR**: `%v`", err)
	}
	return fmt.Sprintf("**OK** (%d lookups recorded)", total)
}

// GetTopLookups formats the most looked-up usernames for the boot
// report, most popular first.
func GetTopLookups(store *stats.Store, n int64) string {
	top, err := store.TopLookups(n)
	if err != nil || len(top) == 0 {
		return "`none`"
	}
	return "`" + strings.Join(top, "`, `") + "`"
}

// GetActiveGuilds returns a map of guild names to guild IDs.
func GetActiveGuilds(s *discordgo.Session) map[string]string {
	guilds := make(map[string]string)
	for _, guild := range s.State.Guilds {
		guilds[guild.Name] = guild.ID
	}
	return guilds
}
