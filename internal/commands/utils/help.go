package utils

import (
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Affiche l'aide du bot",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	return ctx.ReplyEphemeral(
		"📖 **Aide de SentinelBot**\n\n" +
			"**Modération:**\n" +
			"• `/mod warn <membre> <raison>` - Avertit un membre (ban automatique à 3)\n" +
			"• `/mod warns [membre]` - Liste les avertissements\n" +
			"• `/mod removewarn <membre> <numero>` - Retire un avertissement\n" +
			"• `/mod ban` / `/mod unban` / `/mod kick` - Sanctions classiques\n" +
			"• `/mod mute <membre> <duree>` / `/mod unmute` - Timeout\n" +
			"• `/mod clear <nombre>` - Supprime des messages\n\n" +
			"**Automod:**\n" +
			"• `/automod toggle` - Active/désactive l'automod\n" +
			"• `/automod raid` - Active/désactive l'anti-raid\n" +
			"• `/automod addword` / `/automod delword` / `/automod words` - Mots interdits\n" +
			"• `/automod setlog [salon]` - Salon des journaux\n" +
			"• `/automod maintenance` - Mode maintenance\n" +
			"• `/automod status` - Configuration actuelle\n\n" +
			"**Utilitaires:**\n" +
			"• `/utils ping` - Latence\n" +
			"• `/utils status` - État du bot",
	)
}
