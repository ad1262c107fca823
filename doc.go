// Package blurplehook builds and delivers Discord-style webhook messages.
//
// A message is assembled through chainable builders and sent with a single
// HTTP POST to the webhook URL supplied at construction time:
//
//	hook, err := blurplehook.New("https://discord.com/api/webhooks/...")
//	if err != nil {
//	    // handle bad URL
//	}
//
//	embed, err := blurplehook.NewEmbedBuilder().
//	    WithTitle("Deploy finished").
//	    WithColour(blurplehook.Hex("#5865F2")).
//	    AddField("Duration", "42s", true).
//	    Build()
//	if err != nil {
//	    // handle malformed colour
//	}
//
//	err = hook.WithUsername("CI Bot").
//	    WithContent("Build succeeded").
//	    AddEmbed(embed).
//	    Send(context.Background())
//
// Delivery is one-shot: there are no retries and no delivery guarantee. A
// non-2xx response surfaces as a *DeliveryError carrying the status code and
// raw response body, a transport failure as a *NetworkError.
//
// For rate-limit friendly fan-out, WebhookQueue paces queued webhooks at the
// limits Discord applies to webhook endpoints.
package blurplehook
