package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Kravtmk/whoami-app/internal/model"
)

// API is the part of the HTTP API the chat commands use.
type API interface {
	Today(ctx context.Context, userID string) (model.TodayDTO, error)
	AddSegment(ctx context.Context, userID string, seg model.Segment) (model.AppendSegmentResponseDTO, error)
}

const (
	usageToday = "Пример: /today u1"
	usageAdd   = "Пример: /add u1 1 25"
)

// Bot answers chat commands with plain text replies.
type Bot struct {
	api API
}

func NewBot(api API) *Bot {
	return &Bot{api: api}
}

// Handle runs one command line such as "/add u1 1 25" and returns the reply.
func (b *Bot) Handle(ctx context.Context, line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return StartText()
	}
	// "/today@WhoAmIBot u1" → "/today"
	cmd, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]
	switch cmd {
	case "/start", "/help":
		return StartText()
	case "/today":
		return b.today(ctx, args)
	case "/add":
		return b.add(ctx, args)
	default:
		return fmt.Sprintf("Неизвестная команда %s\n\n%s", cmd, StartText())
	}
}

func StartText() string {
	return "WhoAmI bot online 😎\n" +
		"Команды:\n" +
		"/today <userId>\n" +
		"/add <userId> <roleId> <minutes>\n" +
		usageAdd
}

func (b *Bot) today(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return usageToday
	}
	userID := args[0]
	data, err := b.api.Today(ctx, userID)
	if err != nil {
		return errorText(err)
	}
	return RenderToday(userID, data)
}

func (b *Bot) add(ctx context.Context, args []string) string {
	if len(args) < 3 {
		return usageAdd
	}
	userID := args[0]
	roleID, err := strconv.Atoi(args[1])
	if err != nil {
		return usageAdd
	}
	minutes, err := strconv.Atoi(args[2])
	if err != nil {
		return usageAdd
	}
	data, err := b.api.AddSegment(ctx, userID, model.Segment{RoleID: roleID, Minutes: minutes})
	if err != nil {
		return errorText(err)
	}
	return RenderAdded(roleID, minutes, data)
}

func RenderToday(userID string, data model.TodayDTO) string {
	return fmt.Sprintf("📅 Today for %s\n"+
		"Other minutes: %d\n"+
		"Sleep: %d%%\n"+
		"Buffer: %d%%\n"+
		"Tracked: %d%%\n"+
		"Other: %d%%\n",
		userID, data.OtherMinutes,
		data.SummaryPercent.Sleep, data.SummaryPercent.Buffer,
		data.SummaryPercent.Tracked, data.SummaryPercent.Other)
}

func RenderAdded(roleID, minutes int, data model.AppendSegmentResponseDTO) string {
	return fmt.Sprintf("✅ Added: roleId=%d, minutes=%d\nOther minutes now: %d", roleID, minutes, data.OtherMinutes)
}

func errorText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "⛔ " + apiErr.Message
	}
	return "⛔ " + err.Error()
}
