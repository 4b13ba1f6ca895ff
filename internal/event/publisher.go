package event

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"

	"mkt-merchant-api/internal/dal"
)

type Publisher interface {
	Publish(routingKey string, msg any) error
}

// MerchantEvent is the lifecycle message published on merchant.created,
// merchant.updated and merchant.deleted.
type MerchantEvent struct {
	MerchantID  uint64 `json:"merchant_id"`
	UUID        string `json:"uuid"`
	CompanyCode string `json:"company_code"`
	ChannelID   uint64 `json:"channel_id"`
	OccurredAt  int64  `json:"occurred_at"`
}

func NewMerchantEvent(id uint64, uuid, companyCode string, channelID uint64) MerchantEvent {
	return MerchantEvent{
		MerchantID:  id,
		UUID:        uuid,
		CompanyCode: companyCode,
		ChannelID:   channelID,
		OccurredAt:  time.Now().Unix(),
	}
}

// RabbitPublisher publishes to the merchant_events topic exchange. Publishing
// is fire-and-forget; a broker outage never fails the merchant operation.
type RabbitPublisher struct{}

func (RabbitPublisher) Publish(routingKey string, msg any) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, _ := json.Marshal(msg)
	err := dal.RabbitCh.Publish(
		"merchant_events",
		routingKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
	return err
}
