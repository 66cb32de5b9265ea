package aws

import (
	"context"
	"hbs/src/lib"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type Handler func(ctx context.Context, body string) error

type SQSConsumer struct {
	Name    string
	handler Handler
}

func NewSQSConsumer(queue string, handler Handler) *SQSConsumer {
	return &SQSConsumer{
		Name:    queue,
		handler: handler,
	}
}

// Listen polls the queue until ctx is cancelled. A message is deleted only
// after its handler succeeds, so failed deliveries become visible again.
func (s *SQSConsumer) Listen(ctx context.Context) {
	go func() {
		qname := s.Name
		client := lib.AWSGetSQSClient()
		if client == nil {
			log.Printf("[SQS] %s: client unavailable, consumer not started\n", qname)
			return
		}
		qurl, err := lib.SQSGetQueueUrl(ctx, client, qname)
		if err != nil {
			return
		}
		log.Printf("%s: Listening for messages...", qname)
		messagesChan := make(chan sqstypes.Message, 5)
		go func(chn chan<- sqstypes.Message) {
			defer close(chn)
			for {
				output, err := client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
					QueueUrl:            qurl,
					WaitTimeSeconds:     20,
					MaxNumberOfMessages: 10,
				})
				if err != nil {
					if ctx.Err() == nil {
						log.Printf("[SQS] Error receiving messages: %s\n", err.Error())
					}
					return
				}
				for _, m := range output.Messages {
					chn <- m
				}
			}
		}(messagesChan)

		for m := range messagesChan {
			body := strings.Clone(*m.Body)
			if err := s.handler(ctx, body); err != nil {
				log.Printf("[SQS] %s: handler failed: %s\n", qname, err.Error())
				continue
			}
			lib.SQSDeleteMessage(client, qurl, &m)
		}
	}()
}
