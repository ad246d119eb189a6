package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"jarkeeper/domain"

	"github.com/nbd-wtf/go-nostr"
)

// Event kind and session tag for jar broadcasts. Subscribers filter on the
// "s" tag to pick the keeper's stream out of the relay.
const (
	KindJarEvent = 1573

	sessionTag = "tipjar-keeper"
)

// NostrNotifier broadcasts jar events to a relay. It is write-only and fire
// and forget: nobody acknowledges, and the keeper never reads back.
type NostrNotifier struct {
	relay     *nostr.Relay
	secretKey string
	publicKey string
}

func NewNostrNotifier(relayURL, secretKey string) (*NostrNotifier, error) {
	publicKey, err := nostr.GetPublicKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("invalid relay secret key: %v", err)
	}

	relay, err := nostr.RelayConnect(context.Background(), relayURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to relay: %v", err)
	}

	return &NostrNotifier{
		relay:     relay,
		secretKey: secretKey,
		publicKey: publicKey,
	}, nil
}

func (n *NostrNotifier) Notify(ctx context.Context, event domain.JarEvent) error {
	content, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal jar event: %v", err)
	}

	ev := nostr.Event{
		PubKey:    n.publicKey,
		CreatedAt: nostr.Now(),
		Kind:      KindJarEvent,
		Tags: nostr.Tags{
			nostr.Tag{"s", sessionTag},
			nostr.Tag{"p", n.publicKey},
		},
		Content: string(content),
	}

	if err := ev.Sign(n.secretKey); err != nil {
		return fmt.Errorf("failed to sign event: %v", err)
	}

	if err := n.relay.Publish(ctx, ev); err != nil {
		return fmt.Errorf("failed to publish event: %v", err)
	}

	return nil
}

func (n *NostrNotifier) Close() {
	n.relay.Close()
}

// LogNotifier is the fallback sink when no relay is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, event domain.JarEvent) error {
	content, err := json.Marshal(event)
	if err != nil {
		return err
	}
	log.Printf("📣 %s\n", content)
	return nil
}
