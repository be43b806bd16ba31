package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"push": map[string]any{
			"initialState":   "foreground",
			"verifyPushAuth": false,
			"launchMessage": map[string]any{
				"title": "",
			},
		},
		"pubsub": map[string]any{
			"topicId":        "",
			"subscriptionId": "",
		},
		"env": map[string]any{
			"appVersion": "",
		},
	}

	tests := map[string]string{
		"PUSH_INITIALSTATE":        "push.initialState",
		"PUSH_VERIFYPUSHAUTH":      "push.verifyPushAuth",
		"PUSH_LAUNCHMESSAGE_TITLE": "push.launchMessage.title",
		"PUBSUB_TOPICID":           "pubsub.topicId",
		"PUBSUB_SUBSCRIPTIONID":    "pubsub.subscriptionId",
		"ENV_APPVERSION":           "env.appVersion",
		"PUSH__INITIALSTATE":       "push.initialState",
		"CHANNEL_IMPORTANCE":       "channel.importance",
		"PUSH_LAUNCHMESSAGE_BODY":  "push.launchMessage.body",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
