package tasks

import (
	"encoding/json"
	"time"

	"labline/config"
	"labline/models"

	"github.com/hibiken/asynq"
)

const TypeBookingFollowUp = "booking:follow_up"

// FollowUpPayload carries what the staff follow-up needs about a booking.
type FollowUpPayload struct {
	BookingID     string `json:"bookingId"`
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	ServiceName   string `json:"serviceName"`
	Address       string `json:"address"`
	PreferredTime string `json:"preferredTime"`
}

func NewFollowUpTask(payload FollowUpPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingFollowUp, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Client enqueues follow-up tasks on the Redis-backed queue.
type Client struct {
	inner *asynq.Client
}

func NewClient() *Client {
	return &Client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// EnqueueFollowUp schedules the staff follow-up for a confirmed booking after
// the configured delay.
func (c *Client) EnqueueFollowUp(booking models.Booking) error {
	fireAt := time.Now().Add(time.Duration(config.AppConfig.FollowUpDelayMinutes) * time.Minute)
	task, opts, err := NewFollowUpTask(FollowUpPayload{
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		Name:          booking.Name,
		ServiceName:   booking.ServiceName,
		Address:       booking.Address,
		PreferredTime: booking.PreferredTime,
	}, fireAt)
	if err != nil {
		return err
	}
	_, err = c.inner.Enqueue(task, opts...)
	return err
}

// Close releases the underlying queue connection.
func (c *Client) Close() error {
	return c.inner.Close()
}
