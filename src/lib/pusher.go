package lib

import (
	"os"

	"github.com/pusher/pusher-http-go/v5"
)

var pusherClient *pusher.Client

func GetPusherClient() *pusher.Client {
	if pusherClient != nil {
		return pusherClient
	}
	appID := os.Getenv("PUSHER_APP_ID")
	if appID == "" {
		return nil
	}
	pusherClient = &pusher.Client{
		AppID:   appID,
		Key:     os.Getenv("PUSHER_KEY"),
		Secret:  os.Getenv("PUSHER_SECRET"),
		Cluster: os.Getenv("PUSHER_CLUSTER"),
		Secure:  true,
	}
	return pusherClient
}

// PusherPublisher sends owner dashboard events over Pusher channels.
type PusherPublisher struct {
	client *pusher.Client
}

func NewPusherPublisher(c *pusher.Client) *PusherPublisher {
	return &PusherPublisher{client: c}
}

func (p *PusherPublisher) Publish(channel, event string, data map[string]any) error {
	return p.client.Trigger(channel, event, data)
}
