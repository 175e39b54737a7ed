package bot

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hathorchat/hathor-wallet-relay/internal/handlers"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
	"github.com/hathorchat/hathor-wallet-relay/internal/services"
)

const historyLimit = 10

var errBadArgs = errors.New("bad command arguments")

func startText(name string) string {
	return "👋 Hello *" + name + "*, welcome to *HathorChat*!\n\n" +
		"🚀 We turn any Telegram group into a token-powered community, no crypto expertise needed.\n\n" +
		"Here's what you can do:\n" +
		"• /wallet - View your wallet\n" +
		"• /balance - Check your balances\n" +
		"• /tip - Tip someone\n" +
		"• /history - View your transactions\n\n" +
		"💡 Type /help to see the full list of commands."
}

const helpText = "🪙 *HathorChat Bot Help Menu*\n\n" +
	"⚙️ *Core Commands*\n" +
	"/start – Start the bot\n" +
	"/help – Show this help menu\n" +
	"/contact – Contact support\n" +
	"/wallet – View your auto-provisioned HTR wallet\n" +
	"/import\\_wallet – Import your own wallet\n" +
	"/balance – Check your token balances\n" +
	"/status – Check your wallet status\n" +
	"/history – View your transaction history\n\n" +
	"💸 *Token Features*\n" +
	"`/tip 10 COFFEE` (as a reply) – Tip the message author\n" +
	"`/send amount token recipient` – Send tokens directly\n" +
	"`/tx transaction_id` – Inspect a transaction\n\n" +
	"_Questions? Ask @HathorOfficial_"

const contactText = "👥 *Contact Support*\n\n" +
	"*Official Channels:*\n" +
	"Email: contact@hathor.network\n" +
	"Telegram: @HathorOfficial\n\n" +
	"Website: hathor.network\n\n" +
	"🐦 Twitter: [HathorNetwork](https://twitter.com/HathorNetwork)\n" +
	"🔧 GitHub: [HathorNetwork](https://github.com/HathorNetwork)\n" +
	"💬 Discord: [Join our server](https://discord.gg/Eq6wcTkTGs)"

const seedWarningText = "⚠️ *IMPORTANT SECURITY WARNING* ⚠️\n\n" +
	"I'm about to show your wallet seed phrase. This is like a master key to your wallet.\n\n" +
	"*NEVER share this with anyone!*\n\n" +
	"*SAVE IT SOMEWHERE SAFE* - we are not storing it. If you lose it, you can't recover your wallet.\n\n" +
	"Reply with \"SHOW ME\" to view your seed phrase."

func formatBalances(balances map[string]models.BalanceEntry) string {
	if len(balances) == 0 {
		return "💰 *Your Balances:*\n\nNo balances yet."
	}

	symbols := make([]string, 0, len(balances))
	for symbol := range balances {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var sb strings.Builder
	sb.WriteString("💰 *Your Balances:*\n")
	for _, symbol := range symbols {
		entry := balances[symbol]
		fmt.Fprintf(&sb, "\n*%s*\n", symbol)
		fmt.Fprintf(&sb, "• Available: %.2f\n", entry.Available)
		fmt.Fprintf(&sb, "• Locked: %.2f\n", entry.Locked)
		fmt.Fprintf(&sb, "• Total: %.2f\n", entry.Total)
	}
	return sb.String()
}

func formatStatus(telegramID string, status *handlers.StatusResponse) string {
	state := "Syncing"
	if status.Ready {
		state = "Ready"
	}
	if status.StatusMessage != "" {
		state = status.StatusMessage
	}

	var sb strings.Builder
	sb.WriteString("📊 *Wallet Status:*\n")
	fmt.Fprintf(&sb, "• Telegram ID: %s\n", telegramID)
	fmt.Fprintf(&sb, "• Status: %s\n", state)
	if status.Network != "" {
		fmt.Fprintf(&sb, "• Network: %s\n", status.Network)
	}
	return sb.String()
}

func formatHistory(telegramID string, history []models.HistoryItem) string {
	var sb strings.Builder
	sb.WriteString("📊 *Wallet History:*\n")
	fmt.Fprintf(&sb, "• Telegram ID: %s\n\n", telegramID)

	if len(history) == 0 {
		sb.WriteString("No transaction history found.")
		return sb.String()
	}

	items := history
	if len(items) > historyLimit {
		items = items[:historyLimit]
	}

	fmt.Fprintf(&sb, "*Last %d Transactions:*\n\n", len(items))
	for i, tx := range items {
		date := time.Unix(tx.Timestamp, 0).Format("02 Jan 2006 15:04")
		fmt.Fprintf(&sb, "%d. 📥 *TRANSACTION %d*\n", i+1, i+1)
		fmt.Fprintf(&sb, "   • Date: %s\n", date)
		fmt.Fprintf(&sb, "   • Amount: %.2f %s\n", tx.Amount, tx.Token)
		fmt.Fprintf(&sb, "   • Status: %s\n", tx.Status)
		fmt.Fprintf(&sb, "   • [View on Explorer](%s)\n\n", tx.ExplorerURL)
	}

	sb.WriteString("To view detailed transaction info, use:\n`/tx [transaction_id]`\n")
	if items[0].TxID != "" {
		fmt.Fprintf(&sb, "Example: `/tx %s`", items[0].TxID)
	}
	return sb.String()
}

// rawTx is the subset of the upstream transaction record the bot displays.
type rawTx struct {
	TxID      string `json:"tx_id"`
	Timestamp int64  `json:"timestamp"`
	IsVoided  bool   `json:"is_voided"`
	Outputs   []struct {
		Decoded struct {
			Address string `json:"address"`
		} `json:"decoded"`
	} `json:"outputs"`
}

func formatTransaction(txID string, raw json.RawMessage) string {
	var tx rawTx
	_ = json.Unmarshal(raw, &tx)

	if tx.TxID == "" {
		tx.TxID = txID
	}

	date := "Unknown"
	if tx.Timestamp > 0 {
		date = time.Unix(tx.Timestamp, 0).Format("02 Jan 2006 15:04")
	}
	address := "N/A"
	if len(tx.Outputs) > 0 && tx.Outputs[0].Decoded.Address != "" {
		address = tx.Outputs[0].Decoded.Address
	}

	var sb strings.Builder
	sb.WriteString("🧾 *Transaction Details:*\n\n")
	fmt.Fprintf(&sb, "• *Transaction ID:* `%s`\n", tx.TxID)
	fmt.Fprintf(&sb, "• *Address:* %s\n", address)
	fmt.Fprintf(&sb, "• *Timestamp:* %s\n", date)
	fmt.Fprintf(&sb, "• *Voided:* %t\n\n", tx.IsVoided)
	fmt.Fprintf(&sb, "• *Explorer:* [View on Explorer](%s%s)", services.DefaultExplorerTxURL, tx.TxID)
	return sb.String()
}

func formatTransferResult(kind string, amount float64, token string, txID string) string {
	if token == "" {
		token = models.HTR
	}
	return fmt.Sprintf("✅ %s sent!\n*%.2f %s* is on its way 🎉\n\nTransaction: `%s`", kind, amount, token, txID)
}

func tipErrorText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return "❌ The recipient doesn't have a wallet yet. Ask them to run /wallet first."
		case http.StatusBadGateway:
			return "❌ The wallet service rejected the transfer. Check your balance and try again."
		}
	}
	return "😓 Something went wrong. Try again later."
}

// parseTipArgs resolves the tip recipient either from a replied-to message
// or from a leading numeric Telegram ID argument.
func parseTipArgs(msg *tgbotapi.Message) (recipientID string, amount float64, token string, err error) {
	args := strings.Fields(msg.CommandArguments())

	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil {
		// /tip <amount> [token] as a reply
		if len(args) < 1 || len(args) > 2 {
			return "", 0, "", errBadArgs
		}
		recipientID = strconv.FormatInt(msg.ReplyToMessage.From.ID, 10)
		amount, token, err = parseAmountToken(args[0], args[1:])
		return recipientID, amount, token, err
	}

	// /tip <telegramId> <amount> [token]
	if len(args) < 2 || len(args) > 3 {
		return "", 0, "", errBadArgs
	}
	if _, convErr := strconv.ParseInt(args[0], 10, 64); convErr != nil {
		return "", 0, "", errBadArgs
	}
	recipientID = args[0]
	amount, token, err = parseAmountToken(args[1], args[2:])
	return recipientID, amount, token, err
}

// parseSendArgs parses "/send <amount> <token> <recipient>".
func parseSendArgs(arguments string) (recipient string, amount float64, token string, err error) {
	args := strings.Fields(arguments)
	if len(args) != 3 {
		return "", 0, "", errBadArgs
	}

	amount, token, err = parseAmountToken(args[0], args[1:2])
	if err != nil {
		return "", 0, "", err
	}

	recipient = strings.TrimPrefix(args[2], "@")
	if recipient == "" {
		return "", 0, "", errBadArgs
	}
	return recipient, amount, token, nil
}

func parseAmountToken(amountArg string, rest []string) (float64, string, error) {
	amount, err := strconv.ParseFloat(amountArg, 64)
	if err != nil || amount <= 0 {
		return 0, "", errBadArgs
	}

	token := models.HTR
	if len(rest) > 0 {
		token = strings.ToUpper(rest[0])
	}
	return amount, token, nil
}
