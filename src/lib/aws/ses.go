package aws

import (
	"context"
	"hbs/src/lib"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESSendMessage sends a simple (attachment-less) email through SES.
func SESSendMessage(ctx context.Context, in *lib.SendMailInput) error {
	c := lib.AWSGetSESClient()
	if c == nil {
		return lib.ErrAWSUnavailable
	}
	body := &types.Body{}
	content := &types.Content{Data: aws.String(in.Body), Charset: aws.String("UTF-8")}
	if in.Html {
		body.Html = content
	} else {
		body.Text = content
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: in.To},
		Source:      aws.String(in.From),
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(in.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	}
	if in.ReplyTo != "" {
		input.ReplyToAddresses = []string{in.ReplyTo}
	}
	out, err := c.SendEmail(ctx, input)
	if err != nil {
		log.Printf("Error sending email: %s\n", err.Error())
		return err
	}
	log.Printf("Sent email with id: %s\n", *out.MessageId)
	return nil
}
