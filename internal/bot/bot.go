package bot

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hathorchat/hathor-wallet-relay/internal/handlers"
	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

// Relay defines the slice of the relay API client the bot uses.
type Relay interface {
	CreateWallet(ctx context.Context, telegramID string) (*handlers.CreateWalletResponse, error)
	WalletAddress(ctx context.Context, telegramID, walletID string) (string, error)
	Balances(ctx context.Context, telegramID string) (map[string]models.BalanceEntry, error)
	Status(ctx context.Context, telegramID string) (*handlers.StatusResponse, error)
	History(ctx context.Context, telegramID string) ([]models.HistoryItem, error)
	Transaction(ctx context.Context, telegramID, txID string) (json.RawMessage, error)
	Tip(ctx context.Context, fromID, toID string, amount float64, token string) (string, error)
	Send(ctx context.Context, fromID, recipient string, amount float64, token string) (string, error)
}

// Sender sends Telegram messages. *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot handles Telegram commands against the relay API.
type Bot struct {
	api        *tgbotapi.BotAPI
	out        Sender
	relay      Relay
	miniAppURL string

	// pendingSeeds holds seeds of freshly created wallets awaiting the
	// user's "SHOW ME" confirmation.
	pendingSeeds struct {
		sync.Mutex
		byUser map[int64]string
	}
}

// New creates a Bot on top of an authorized Telegram API client.
func New(api *tgbotapi.BotAPI, relay Relay, miniAppURL string) *Bot {
	b := &Bot{
		api:        api,
		out:        api,
		relay:      relay,
		miniAppURL: miniAppURL,
	}
	b.pendingSeeds.byUser = make(map[int64]string)
	return b
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30

	updates := b.api.GetUpdatesChan(cfg)
	logger.Log.Infow("bot polling started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if !msg.IsCommand() {
		b.handleText(ctx, msg)
		return
	}

	logger.Log.Infow("command received", "command", msg.Command(), "from", msg.From.ID)

	switch msg.Command() {
	case "start":
		b.handleStart(msg)
	case "help":
		b.handleHelp(msg)
	case "contact":
		b.handleContact(msg)
	case "wallet":
		b.handleWallet(ctx, msg)
	case "import_wallet":
		b.handleImportWallet(msg)
	case "balance":
		b.handleBalance(ctx, msg)
	case "status":
		b.handleStatus(ctx, msg)
	case "history":
		b.handleHistory(ctx, msg)
	case "tx":
		b.handleTx(ctx, msg)
	case "tip":
		b.handleTip(ctx, msg)
	case "send":
		b.handleSend(ctx, msg)
	}
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	out.DisableWebPagePreview = true
	if _, err := b.out.Send(out); err != nil {
		logger.Log.Errorw("failed to send message", "chat", msg.Chat.ID, "err", err)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	name := msg.From.FirstName
	if name == "" {
		name = msg.From.UserName
	}
	if name == "" {
		name = "there"
	}
	b.reply(msg, startText(name))

	if b.miniAppURL != "" {
		out := tgbotapi.NewMessage(msg.Chat.ID, "🚀 Launch Mini App")
		out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("Open Wallet", b.miniAppURL),
			),
		)
		if _, err := b.out.Send(out); err != nil {
			logger.Log.Errorw("failed to send mini app button", "chat", msg.Chat.ID, "err", err)
		}
	}
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	b.reply(msg, helpText)
}

func (b *Bot) handleContact(msg *tgbotapi.Message) {
	b.reply(msg, contactText)
}

func (b *Bot) handleImportWallet(msg *tgbotapi.Message) {
	if b.miniAppURL == "" {
		b.reply(msg, "Wallet import is not available right now.")
		return
	}
	out := tgbotapi.NewMessage(msg.Chat.ID, "🚀 Launch Mini App To Import Your Wallet")
	out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Open Wallet", b.miniAppURL),
		),
	)
	if _, err := b.out.Send(out); err != nil {
		logger.Log.Errorw("failed to send mini app button", "chat", msg.Chat.ID, "err", err)
	}
}

func (b *Bot) handleWallet(ctx context.Context, msg *tgbotapi.Message) {
	telegramID := strconv.FormatInt(msg.From.ID, 10)

	res, err := b.relay.CreateWallet(ctx, telegramID)
	if err != nil {
		logger.Log.Errorw("wallet provisioning failed", "telegramId", telegramID, "err", err)
		b.reply(msg, "❌ Could not create your wallet.")
		return
	}

	header := "🪪 Your existing wallet:"
	if res.IsNew {
		header = "🪪 Wallet created!"
	}
	b.reply(msg, header+"\n\n🧾 Wallet ID: `"+res.WalletID+"`")

	address := res.Address
	if address == "" {
		address, err = b.relay.WalletAddress(ctx, telegramID, res.WalletID)
		if err != nil {
			logger.Log.Warnw("address fetch failed", "walletId", res.WalletID, "err", err)
		}
	}
	if address != "" {
		b.reply(msg, "📬 Your wallet address: `"+address+"`")
	}

	if res.IsNew && res.Seed != "" {
		b.pendingSeeds.Lock()
		b.pendingSeeds.byUser[msg.From.ID] = res.Seed
		b.pendingSeeds.Unlock()

		b.reply(msg, seedWarningText)
	}
}

// handleText resolves the "SHOW ME" seed confirmation.
func (b *Bot) handleText(_ context.Context, msg *tgbotapi.Message) {
	b.pendingSeeds.Lock()
	seed, ok := b.pendingSeeds.byUser[msg.From.ID]
	if ok {
		delete(b.pendingSeeds.byUser, msg.From.ID)
	}
	b.pendingSeeds.Unlock()

	if !ok {
		return
	}

	if msg.Text != "SHOW ME" {
		b.reply(msg, "❌ Seed phrase display cancelled. Your seed is not shown for security.")
		return
	}

	b.reply(msg, "🔒 *YOUR SEED PHRASE - STORE SAFELY* 🔒\n\n`"+seed+"`\n\n⚠️ Write it down now. It is not stored anywhere and cannot be recovered if lost.")
}

func (b *Bot) handleBalance(ctx context.Context, msg *tgbotapi.Message) {
	telegramID := strconv.FormatInt(msg.From.ID, 10)

	balances, err := b.relay.Balances(ctx, telegramID)
	if err != nil {
		logger.Log.Errorw("balance fetch failed", "telegramId", telegramID, "err", err)
		b.reply(msg, "❌ Could not fetch your balance.")
		return
	}

	b.reply(msg, formatBalances(balances))
}

func (b *Bot) handleStatus(ctx context.Context, msg *tgbotapi.Message) {
	telegramID := strconv.FormatInt(msg.From.ID, 10)

	status, err := b.relay.Status(ctx, telegramID)
	if err != nil {
		logger.Log.Errorw("status fetch failed", "telegramId", telegramID, "err", err)
		b.reply(msg, "❌ Could not fetch wallet status.")
		return
	}

	b.reply(msg, formatStatus(telegramID, status))
}

func (b *Bot) handleHistory(ctx context.Context, msg *tgbotapi.Message) {
	telegramID := strconv.FormatInt(msg.From.ID, 10)

	history, err := b.relay.History(ctx, telegramID)
	if err != nil {
		logger.Log.Errorw("history fetch failed", "telegramId", telegramID, "err", err)
		b.reply(msg, "❌ Could not fetch wallet history.")
		return
	}

	b.reply(msg, formatHistory(telegramID, history))
}

func (b *Bot) handleTx(ctx context.Context, msg *tgbotapi.Message) {
	txID := msg.CommandArguments()
	if txID == "" {
		b.reply(msg, "❌ *Invalid usage!*\n\nPlease provide a transaction ID.\nExample: `/tx 0000340349f9342c4e5eda6f818697f6c1748a81e2ff4b67bc2211d7f8761b11`")
		return
	}

	telegramID := strconv.FormatInt(msg.From.ID, 10)

	raw, err := b.relay.Transaction(ctx, telegramID, txID)
	if err != nil {
		logger.Log.Errorw("transaction fetch failed", "telegramId", telegramID, "txId", txID, "err", err)
		b.reply(msg, "❌ Could not fetch transaction details. Check if the transaction ID is correct.")
		return
	}

	b.reply(msg, formatTransaction(txID, raw))
}

func (b *Bot) handleTip(ctx context.Context, msg *tgbotapi.Message) {
	recipientID, amount, token, err := parseTipArgs(msg)
	if err != nil {
		b.reply(msg, "🚫 *Invalid usage!*\n\nReply to the recipient's message with:\n`/tip 10 VIBE`\n\nor use their Telegram ID:\n`/tip 123456789 5 HTR`")
		return
	}

	fromID := strconv.FormatInt(msg.From.ID, 10)

	txID, err := b.relay.Tip(ctx, fromID, recipientID, amount, token)
	if err != nil {
		logger.Log.Errorw("tip failed", "from", fromID, "to", recipientID, "err", err)
		b.reply(msg, tipErrorText(err))
		return
	}

	b.reply(msg, formatTransferResult("Tip", amount, token, txID))
}

func (b *Bot) handleSend(ctx context.Context, msg *tgbotapi.Message) {
	recipient, amount, token, err := parseSendArgs(msg.CommandArguments())
	if err != nil {
		b.reply(msg, "🚫 *Invalid usage!*\n\nTry:\n`/send 10 VIBE <address or Telegram ID>`\n\n_Example:_ `/send 5 HTR WdK3MDVOtzx...`")
		return
	}

	fromID := strconv.FormatInt(msg.From.ID, 10)

	txID, err := b.relay.Send(ctx, fromID, recipient, amount, token)
	if err != nil {
		logger.Log.Errorw("send failed", "from", fromID, "recipient", recipient, "err", err)
		b.reply(msg, tipErrorText(err))
		return
	}

	b.reply(msg, formatTransferResult("Transfer", amount, token, txID))
}
