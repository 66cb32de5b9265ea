package lib

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqsTypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var awsConfig *aws.Config

// awsGetSdkConfig loads the default credential chain. When AWS_IAM_ROLE_ARN is
// set the role is assumed and its temporary credentials are used instead.
func awsGetSdkConfig() (*aws.Config, error) {
	if awsConfig != nil {
		return awsConfig, nil
	}
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("Error loading default config: %s\n", err.Error())
		return nil, err
	}
	iamRole := os.Getenv("AWS_IAM_ROLE_ARN")
	if iamRole != "" {
		stsClient := sts.NewFromConfig(cfg)
		output, err := stsClient.AssumeRole(context.TODO(), &sts.AssumeRoleInput{
			RoleArn:         aws.String(iamRole),
			RoleSessionName: aws.String("hbs-api"),
		})
		if err != nil {
			log.Printf("Error configuring STS client: %s\n", err.Error())
			return nil, err
		}
		creds := output.Credentials
		cfg, err = config.LoadDefaultConfig(context.TODO(), config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(*creds.AccessKeyId, *creds.SecretAccessKey, *creds.SessionToken),
		))
		if err != nil {
			log.Printf("Error configuration: %s\n", err.Error())
			return nil, err
		}
	}
	awsConfig = &cfg
	return awsConfig, nil
}

func AWSGetS3Client() *s3.Client {
	cfg, err := awsGetSdkConfig()
	if err != nil {
		log.Printf("Failed to iniialize S3: %s\n", err.Error())
		return nil
	}
	return s3.NewFromConfig(*cfg)
}

func AWSGetSQSClient() *sqs.Client {
	cfg, err := awsGetSdkConfig()
	if err != nil {
		log.Printf("Failed to initialize SQS client: %s\n", err.Error())
		return nil
	}
	return sqs.NewFromConfig(*cfg)
}

func AWSGetSESClient() *ses.Client {
	cfg, err := awsGetSdkConfig()
	if err != nil {
		log.Printf("Failed to initialize SES client: %s\n", err.Error())
		return nil
	}
	return ses.NewFromConfig(*cfg)
}

func SQSGetQueueUrl(ctx context.Context, c *sqs.Client, qname string) (*string, error) {
	qurl, err := c.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(qname),
	})
	if err != nil {
		log.Printf("Failed to retrieve queue URL for %s: %s\n", qname, err.Error())
		return nil, err
	}
	return qurl.QueueUrl, nil
}

func SQSProduceMessage(ctx context.Context, qname string, body string) error {
	client := AWSGetSQSClient()
	if client == nil {
		return ErrAWSUnavailable
	}
	qurl, err := SQSGetQueueUrl(ctx, client, qname)
	if err != nil {
		return err
	}
	out, err := client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    qurl,
		MessageBody: aws.String(body),
	})
	if err != nil {
		log.Printf("[SQS] Error sending message: %s\n", err.Error())
		return err
	}
	log.Printf("[SQS] Queued message %s on %s\n", aws.ToString(out.MessageId), qname)
	return nil
}

func SQSDeleteMessage(c *sqs.Client, qurl *string, msg *sqsTypes.Message) {
	_, err := c.DeleteMessage(context.TODO(), &sqs.DeleteMessageInput{
		QueueUrl:      qurl,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Printf("Error deleting message from queue: %s\n", err.Error())
		return
	}
	log.Printf("Deleted message from queue: %s\n", aws.ToString(msg.MessageId))
}
