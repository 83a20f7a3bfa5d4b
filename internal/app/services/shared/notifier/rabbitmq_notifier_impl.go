package notifier

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"go.uber.org/zap"
)

var (
	notifierInstance contracts.ConsultationNotifier
	onceNotifier     sync.Once
)

type rabbitMQNotifier struct {
	Connection *amqp.Connection
	Log        *zap.Logger
}

type statusChangedEvent struct {
	ConsultationID string `json:"consultation_id"`
	LawyerID       string `json:"lawyer_id"`
	ClientID       string `json:"client_id"`
	Status         string `json:"status"`
	Paid           bool   `json:"paid"`
}

func NewRabbitMQNotifier(conn *amqp.Connection, logger *zap.Logger) contracts.ConsultationNotifier {
	onceNotifier.Do(func() {
		instance := &rabbitMQNotifier{
			Connection: conn,
			Log:        logger,
		}
		notifierInstance = instance
	})
	return notifierInstance
}

func (n *rabbitMQNotifier) PublishStatusChanged(ctx context.Context, consultation *models.Consultation) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	channel, err := n.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.ConsultationEventExchange)
	}
	defer channel.Close()

	err = channel.ExchangeDeclare(
		constvars.ConsultationEventExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.ConsultationEventExchange)
	}

	event := statusChangedEvent{
		ConsultationID: consultation.ID.Hex(),
		LawyerID:       consultation.LawyerID.Hex(),
		ClientID:       consultation.ClientID.Hex(),
		Status:         string(consultation.Status.Display()),
		Paid:           consultation.Paid,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = channel.PublishWithContext(ctx,
		constvars.ConsultationEventExchange,
		constvars.ConsultationStatusChangedTopic,
		false,
		false,
		amqp.Publishing{
			ContentType: constvars.MIMEApplicationJSON,
			Body:        body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.ConsultationEventExchange)
	}

	n.Log.Info("rabbitMQNotifier.PublishStatusChanged published event",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultation.ID.Hex()),
		zap.String(constvars.LoggingStatusKey, string(consultation.Status)),
	)
	return nil
}
