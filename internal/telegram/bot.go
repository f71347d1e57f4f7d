package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"superteam-bot/internal/config"
	"superteam-bot/internal/knowledge"
	"superteam-bot/internal/model"
	"superteam-bot/internal/service"
)

// Compile-time check: the bot is the workflow's notification channel.
var _ service.ApprovalNotifier = (*Bot)(nil)

const (
	welcomeMessage     = "Welcome to Superteam Vietnam Bot!"
	updateTimeoutSecs  = 30
	draftFailedMessage = "Sorry, couldn't generate a tweet."
)

// Bot runs the Telegram transport: user Q&A against the knowledge base,
// draft commands in the admin chat and the approval inline keyboard.
type Bot struct {
	api         *tgbotapi.BotAPI
	adminChatID int64
	knowledge   *knowledge.Service
	drafts      *service.DraftService
	workflow    *service.ApprovalWorkflow
	logger      *zap.Logger
}

// NewBot creates the bot transport. The workflow is attached separately via
// SetWorkflow because the workflow in turn needs the bot as its
// notification channel.
func NewBot(cfg *config.Config, kb *knowledge.Service, drafts *service.DraftService, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Bot{
		api:         api,
		adminChatID: cfg.TelegramAdminChatID,
		knowledge:   kb,
		drafts:      drafts,
		logger:      logger.Named("TelegramBot"),
	}, nil
}

// SetWorkflow attaches the approval workflow. Must be called before Run.
func (b *Bot) SetWorkflow(workflow *service.ApprovalWorkflow) {
	b.workflow = workflow
}

// SendApprovalRequest implements service.ApprovalNotifier: it posts the
// draft to the admin chat with Approve/Reject buttons tagged with the id.
func (b *Bot) SendApprovalRequest(_ context.Context, id, content string) error {
	msg := tgbotapi.NewMessage(b.adminChatID, "Approve this tweet:\n"+content)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Approve", ApprovalCallbackData(model.ActionApprove, id)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Reject", ApprovalCallbackData(model.ActionReject, id)),
		),
	)

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send approval request: %w", err)
	}
	return nil
}

// Run consumes updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = updateTimeoutSecs
	updates := b.api.GetUpdatesChan(updateConfig)

	b.logger.Info("Telegram bot started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("Telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Text == "" {
		return
	}
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	b.reply(msg.Chat.ID, b.knowledge.Answer(ctx, msg.Text))
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, welcomeMessage)
	case "tweet":
		b.handleDraftCommand(ctx, msg, b.drafts.GenerateTweet)
	case "enhance":
		b.handleDraftCommand(ctx, msg, b.drafts.EnhanceTweet)
	default:
		b.reply(msg.Chat.ID, "Unknown command.")
	}
}

// handleDraftCommand runs a draft producer over the command argument and
// submits the result for approval. Admin chat only.
func (b *Bot) handleDraftCommand(ctx context.Context, msg *tgbotapi.Message, draft func(context.Context, string) (string, error)) {
	if msg.Chat.ID != b.adminChatID {
		b.reply(msg.Chat.ID, "This command is only available in the admin chat.")
		return
	}

	input := strings.TrimSpace(msg.CommandArguments())
	if input == "" {
		b.reply(msg.Chat.ID, "Usage: /"+msg.Command()+" <text>")
		return
	}

	content, err := draft(ctx, input)
	if err != nil {
		b.logger.Warn("Draft generation failed", zap.Error(err))
		b.reply(msg.Chat.ID, draftFailedMessage)
		return
	}

	if _, err := b.workflow.SubmitForApproval(ctx, content); err != nil {
		b.logger.Error("Failed to submit draft for approval", zap.Error(err))
		b.reply(msg.Chat.ID, "Failed to send the draft for approval.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	defer b.answerCallback(query.ID)

	decision, err := ParseDecision(query.Data)
	if err != nil {
		b.logger.Warn("Unrecognized callback data", zap.String("data", query.Data))
		return
	}

	outcome := b.workflow.HandleDecision(ctx, decision)
	if query.Message != nil {
		b.reply(query.Message.Chat.ID, outcome.Message())
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error("Failed to send telegram message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// answerCallback acknowledges the button press so the client stops showing
// a spinner. The workflow outcome is reported as a separate message.
func (b *Bot) answerCallback(id string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, "")); err != nil {
		b.logger.Error("Failed to answer callback query", zap.Error(err))
	}
}
