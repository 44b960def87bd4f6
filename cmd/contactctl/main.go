package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dantee-nv/contact-relay/internal/api/dto/v1/contact"
	"github.com/dantee-nv/contact-relay/internal/client"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contactctl",
	Short: "contactctl - submit contact messages to the relay",
	Long: `contactctl submits a contact form message to a configured relay
endpoint, with the same validation and spam heuristics the relay applies.`,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a contact message",
	Long: `Send a contact message through the relay.

Example:
  contactctl send --name "Ada" --email ada@example.com \
    --subject "Hi" --message "Hello there"`,
	Run: func(cmd *cobra.Command, args []string) {
		rawURL, _ := cmd.Flags().GetString("url")
		if rawURL == "" {
			rawURL = os.Getenv("CONTACT_API_URL")
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		subject, _ := cmd.Flags().GetString("subject")
		message, _ := cmd.Flags().GetString("message")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		c := client.New(rawURL)
		c.SetTimeout(timeout)

		input := contact.SubmissionInput{
			Name:    name,
			Email:   email,
			Subject: subject,
			Message: message,
		}

		if errs := c.Validate(input); len(errs) > 0 {
			fields := make([]string, 0, len(errs))
			for field := range errs {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, errs[field])
			}
			os.Exit(1)
		}

		// Spinner while the request is in flight; the command blocks, so
		// only one submission can be pending at a time.
		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending message..."
		s.Start()
		result := c.Submit(context.Background(), input)
		s.Stop()

		if !result.OK {
			fmt.Fprintln(os.Stderr, result.Message)
			os.Exit(1)
		}

		fmt.Println(result.Message)
	},
}

func init() {
	sendCmd.Flags().String("url", "", "Relay base URL (defaults to CONTACT_API_URL)")
	sendCmd.Flags().String("name", "", "Your name")
	sendCmd.Flags().String("email", "", "Your email address (used as reply-to)")
	sendCmd.Flags().String("subject", "", "Message subject")
	sendCmd.Flags().String("message", "", "Message body")
	sendCmd.Flags().Duration("timeout", client.DefaultTimeout, "Submission timeout")

	rootCmd.AddCommand(sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
