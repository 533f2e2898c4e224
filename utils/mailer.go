package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
	sesErr    error
)

func sesInit() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		sesErr = fmt.Errorf("AWS config load failed: %w", err)
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	sesOnce.Do(sesInit)
	if sesErr != nil {
		return sesErr
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendManualReviewEmail notifies the dietitian address (DIETITIAN_EMAIL)
// that an order ended up needing a manual meal change. Silently skipped when
// no address is configured so local setups work without AWS.
func SendManualReviewEmail(patientName, wardName, roomNumber string) error {
	to := os.Getenv("DIETITIAN_EMAIL")
	if to == "" {
		return nil
	}
	subject := "Meal order needs manual change"
	body := fmt.Sprintf(
		"The daily order for %s (ward %s, room %s) has a dietary conflict with no safe substitute.\n\nPlease review and change the affected meals manually.",
		patientName, wardName, roomNumber)
	return sendEmail(to, subject, body)
}
