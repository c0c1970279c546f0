// internal/notifications/aws.go
package notifications

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// AWSNotifier sends a confirmation email via SES and, when a topic is
// configured, publishes the signup event to SNS.
type AWSNotifier struct {
	cfg       config.NotificationConfig
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewAWSNotifier(cfg config.NotificationConfig, log logger.Logger) (*AWSNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &AWSNotifier{
		cfg:       cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "notifications"}),
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

func (n *AWSNotifier) SignupConfirmation(ctx context.Context, activityName, email string) error {
	notificationID := uuid.New().String()

	if n.cfg.FromAddress != "" {
		if err := n.sendEmail(ctx, activityName, email); err != nil {
			n.logger.Error("confirmation email failed", map[string]interface{}{
				"notificationId": notificationID,
				"activity":       activityName,
				"email":          email,
				"error":          err.Error(),
			})
			return err
		}
	}

	if n.cfg.SNSTopicARN != "" {
		if err := n.publishEvent(ctx, activityName, email); err != nil {
			n.logger.Error("signup event publish failed", map[string]interface{}{
				"notificationId": notificationID,
				"activity":       activityName,
				"error":          err.Error(),
			})
			return err
		}
	}

	n.logger.Info("signup confirmation sent", map[string]interface{}{
		"notificationId": notificationID,
		"activity":       activityName,
		"email":          email,
	})
	return nil
}

func (n *AWSNotifier) sendEmail(ctx context.Context, activityName, email string) error {
	subject := fmt.Sprintf("Signed up for %s", activityName)
	body := fmt.Sprintf("You are signed up for %s. See the activity schedule on the school site.", activityName)

	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(n.cfg.FromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{email},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	return err
}

func (n *AWSNotifier) publishEvent(ctx context.Context, activityName, email string) error {
	message := fmt.Sprintf(`{"event":"signup","activity":%q,"email":%q}`, activityName, email)
	_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.cfg.SNSTopicARN),
		Message:  aws.String(message),
	})
	return err
}
