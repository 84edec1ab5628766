// Package huefy provides a Go client SDK for Huefy, a hosted
// template-email sending API.
//
// The SDK sends template emails either directly over HTTPS or through a
// locally installed kernel binary, selected once when the client is
// constructed.
//
// Basic usage:
//
//	client, err := huefy.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.SendEmail(ctx, &huefy.SendEmailRequest{
//	    TemplateKey: "welcome-email",
//	    Recipient:   "john@example.com",
//	    TemplateData: map[string]string{
//	        "name": "John",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Message ID:", resp.MessageID)
package huefy
