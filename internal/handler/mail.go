package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// publishMail 将邮件序列化后投递到消息队列，由邮件服务异步发送
func (h *Handler) publishMail(mailMessage domain.MailMessage) error {
	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}
