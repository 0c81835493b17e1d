package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
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

// SendWelcomeEmail greets a newly registered user.
func SendWelcomeEmail(to string, firstName string) error {
	subject := "Welcome to the UGA Nutrition Assistant"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account is ready. Set your goals, browse the dining menus, and start logging meals.\n\nGo Dawgs!",
		firstName,
	)
	return sendEmail(to, subject, body)
}

// SendOverTargetEmail notifies a user that today's calories crossed the
// high end of their target range.
func SendOverTargetEmail(to string, consumed, high float64) error {
	subject := "You're over today's calorie range"
	body := fmt.Sprintf(
		"You've logged %.0f kcal today, above your range's high bound of %.0f kcal.\nConsider a lighter dinner or some extra activity.",
		consumed, high,
	)
	return sendEmail(to, subject, body)
}
