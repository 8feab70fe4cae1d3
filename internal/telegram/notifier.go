package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/cameratoon/scheduler/internal/employees"
	"github.com/cameratoon/scheduler/internal/metrics"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=notifier.go -destination=notifier_mocks_test.go -package=telegram

var ErrNoRecipients = errors.New("no employees with a telegram id")

type messageSender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type employeeDirectory interface {
	Get(ctx context.Context, id int) (*employees.Employee, error)
	All(ctx context.Context) ([]employees.Employee, error)
}

// Notifier composes the bot messages the team sees. All texts are in Russian,
// matching the frontend.
type Notifier struct {
	sender    messageSender
	directory employeeDirectory
	metrics   *metrics.Manager
}

func NewNotifier(
	sender messageSender,
	directory employeeDirectory,
	metricsManager *metrics.Manager,
) *Notifier {
	return &Notifier{
		sender:    sender,
		directory: directory,
		metrics:   metricsManager,
	}
}

// ShiftAssigned tells the employee about a new or changed shift. An employee
// without a linked telegram account is skipped, that is not an error.
func (n *Notifier) ShiftAssigned(
	ctx context.Context,
	employeeID int,
	date, shiftType, assignerName string,
	isUpdate bool,
) error {
	employee, err := n.directory.Get(ctx, employeeID)
	if err != nil {
		n.metrics.CounterNotificationErrors.Inc()
		return fmt.Errorf("get employee %d: %w", employeeID, err)
	}

	if employee.TelegramID == "" {
		log.Debugf("employee %s has no telegram id, skipping shift notification", employee.Username)
		return nil
	}

	shiftLabel := "🌅 Дневная"
	if shiftType == "night" {
		shiftLabel = "🌙 Ночная"
	}
	action := "назначена"
	if isUpdate {
		action = "изменена"
	}

	message := fmt.Sprintf(
		"🎬 CAMERA TOON - Уведомление о смене\n\n👤 %s\n📅 %s\n⏰ %s смена %s\n\n✅ Назначил: %s",
		employee.Name, date, shiftLabel, action, assignerName,
	)

	if err := n.sender.SendMessage(ctx, employee.TelegramID, message); err != nil {
		n.metrics.CounterNotificationErrors.Inc()
		return fmt.Errorf("send shift notification to %s: %w", employee.Username, err)
	}

	n.metrics.CounterNotificationsSent.Inc()
	return nil
}

// SendTest checks the bot connection by messaging the requester directly.
func (n *Notifier) SendTest(ctx context.Context, recipient *employees.Employee, message string) error {
	if recipient.TelegramID == "" {
		return fmt.Errorf("employee %s has no telegram id", recipient.Username)
	}

	if message == "" {
		message = "Тест бота CAMERA TOON - связь установлена!"
	}

	text := fmt.Sprintf("🎬 CAMERA TOON\n\n%s", message)
	if err := n.sender.SendMessage(ctx, recipient.TelegramID, text); err != nil {
		n.metrics.CounterNotificationErrors.Inc()
		return fmt.Errorf("send test message to %s: %w", recipient.Username, err)
	}

	n.metrics.CounterNotificationsSent.Inc()
	return nil
}

type BroadcastResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Broadcast messages every employee with a linked telegram account. A failed
// recipient does not stop the rest, all failures come back aggregated.
func (n *Notifier) Broadcast(ctx context.Context, senderName, message string) (BroadcastResult, error) {
	var result BroadcastResult

	allEmployees, err := n.directory.All(ctx)
	if err != nil {
		return result, fmt.Errorf("list employees: %w", err)
	}

	text := fmt.Sprintf(
		"🎬 CAMERA TOON - Уведомление\n\n%s\n\n📅 От: %s",
		message, senderName,
	)

	var sendErrs error
	for i := range allEmployees {
		employee := &allEmployees[i]
		if employee.TelegramID == "" {
			continue
		}

		if err := n.sender.SendMessage(ctx, employee.TelegramID, text); err != nil {
			result.Failed++
			n.metrics.CounterNotificationErrors.Inc()
			sendErrs = multierr.Append(sendErrs, fmt.Errorf("send to %s: %w", employee.Username, err))
			continue
		}

		result.Sent++
		n.metrics.CounterNotificationsSent.Inc()
	}

	if result.Sent == 0 && result.Failed == 0 {
		return result, ErrNoRecipients
	}

	return result, sendErrs
}
